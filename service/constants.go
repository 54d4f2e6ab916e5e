package service

const (
	// DefaultGracePeriodDays is how long after the due date a payment can
	// land before the loan counts as defaulted.
	DefaultGracePeriodDays = 30

	// PartialOnTimeMaxDaysLate is the slack allowed on a partial payment
	// before it counts as late.
	PartialOnTimeMaxDaysLate = 5
)
