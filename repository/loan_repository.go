package repository

import "github.com/wanjiru121/loan-service/domain"

// LoanRepository holds the loan and payment collections in insertion order.
// Reads have no side effects; writes are append-only and are driven
// exclusively by the loan service.
type LoanRepository interface {
	AllLoans() []*domain.Loan
	LoanByID(id int) (*domain.Loan, bool)
	PaymentsByLoanID(id int) []domain.Payment
	AppendLoan(loan *domain.Loan)
	AppendPayment(payment domain.Payment)
	LoanCount() int
	PaymentCount() int
	// Snapshot returns value copies of both collections for persistence.
	Snapshot() ([]domain.Loan, []domain.Payment)
}
