package domain

// PaymentStatus classifies how a loan is being repaid relative to its due
// date. Derived from the payment history, never stored.
type PaymentStatus string

const (
	StatusOnTime                 PaymentStatus = "On Time"
	StatusLate                   PaymentStatus = "Late"
	StatusDefaulted              PaymentStatus = "Defaulted"
	StatusUnpaid                 PaymentStatus = "Unpaid"
	StatusPartiallyPaid          PaymentStatus = "Partially Paid"
	StatusLatePartiallyPaid      PaymentStatus = "Late Partially Paid"
	StatusDefaultedPartiallyPaid PaymentStatus = "Defaulted Partially Paid"
)
