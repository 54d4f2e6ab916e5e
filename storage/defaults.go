package storage

import "github.com/wanjiru121/loan-service/domain"

// DefaultLoans is the dataset a fresh deployment starts with.
func DefaultLoans() []domain.Loan {
	due := domain.MustParseDate("2025-03-01")
	return []domain.Loan{
		{ID: 1, Name: "Tom's Loan", InterestRate: 5.0, Principal: 10000, DueDate: due, RemainingBalance: 1000},
		{ID: 2, Name: "Chris Wailaka", InterestRate: 3.5, Principal: 500000, DueDate: due, RemainingBalance: 20000},
		{ID: 3, Name: "NP Mobile Money", InterestRate: 4.5, Principal: 30000, DueDate: due, RemainingBalance: 0},
		{ID: 4, Name: "Esther's Autoparts", InterestRate: 1.5, Principal: 40000, DueDate: due, RemainingBalance: 40000},
	}
}

// DefaultPayments is the payment history matching DefaultLoans.
func DefaultPayments() []domain.Payment {
	return []domain.Payment{
		{ID: 1, LoanID: 1, PaymentDate: domain.MustParseDate("2024-03-04"), Amount: 9000},
		{ID: 2, LoanID: 2, PaymentDate: domain.MustParseDate("2024-03-15"), Amount: 30000},
		{ID: 3, LoanID: 3, PaymentDate: domain.MustParseDate("2024-04-05"), Amount: 30000},
	}
}
