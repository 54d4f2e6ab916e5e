package service

import "github.com/wanjiru121/loan-service/domain"

// RemainingBalance derives a loan's outstanding balance from its payment
// history: principal minus everything paid, floored at zero.
func RemainingBalance(loan *domain.Loan, payments []domain.Payment) float64 {
	balance := float64(loan.Principal) - totalPaid(payments)
	if balance < 0 {
		return 0
	}
	return balance
}

// StatusOf classifies a loan's repayment state from its payment history and
// due date. When several payments share the latest date, the one recorded
// last (highest id) is treated as the latest.
func StatusOf(loan *domain.Loan, payments []domain.Payment, graceDays int) domain.PaymentStatus {
	if len(payments) == 0 {
		return domain.StatusUnpaid
	}

	paid := totalPaid(payments)
	latest := latestPayment(payments)
	daysLate := latest.PaymentDate.DaysSince(loan.DueDate)

	if paid == 0 {
		return domain.StatusUnpaid
	}

	if paid < float64(loan.Principal) {
		switch {
		case daysLate <= PartialOnTimeMaxDaysLate:
			return domain.StatusPartiallyPaid
		case daysLate <= graceDays:
			return domain.StatusLatePartiallyPaid
		default:
			return domain.StatusDefaultedPartiallyPaid
		}
	}

	switch {
	case !latest.PaymentDate.After(loan.DueDate):
		return domain.StatusOnTime
	case daysLate <= graceDays:
		return domain.StatusLate
	default:
		return domain.StatusDefaulted
	}
}

func totalPaid(payments []domain.Payment) float64 {
	var total float64
	for _, payment := range payments {
		total += payment.Amount
	}
	return total
}

func latestPayment(payments []domain.Payment) domain.Payment {
	latest := payments[0]
	for _, payment := range payments[1:] {
		if !payment.PaymentDate.Before(latest.PaymentDate) {
			latest = payment
		}
	}
	return latest
}
