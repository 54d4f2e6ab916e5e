package repository

import "github.com/wanjiru121/loan-service/domain"

// LoanRepositoryMemory is the in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	loans    []*domain.Loan
	payments []domain.Payment
}

// NewLoanRepositoryMemory creates an empty in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		loans:    []*domain.Loan{},
		payments: []domain.Payment{},
	}
}

// NewLoanRepositoryFrom creates a repository seeded with loaded collections.
func NewLoanRepositoryFrom(loans []domain.Loan, payments []domain.Payment) *LoanRepositoryMemory {
	repo := NewLoanRepositoryMemory()
	for i := range loans {
		loan := loans[i]
		repo.loans = append(repo.loans, &loan)
	}
	repo.payments = append(repo.payments, payments...)
	return repo
}

// AllLoans returns every loan in insertion order.
func (r *LoanRepositoryMemory) AllLoans() []*domain.Loan {
	return r.loans
}

// LoanByID returns the loan with the given id, if any.
func (r *LoanRepositoryMemory) LoanByID(id int) (*domain.Loan, bool) {
	for _, loan := range r.loans {
		if loan.ID == id {
			return loan, true
		}
	}
	return nil, false
}

// PaymentsByLoanID returns the payments recorded against a loan, in the
// order they were recorded.
func (r *LoanRepositoryMemory) PaymentsByLoanID(id int) []domain.Payment {
	var matched []domain.Payment
	for _, payment := range r.payments {
		if payment.LoanID == id {
			matched = append(matched, payment)
		}
	}
	return matched
}

// AppendLoan adds a loan to the end of the collection.
func (r *LoanRepositoryMemory) AppendLoan(loan *domain.Loan) {
	r.loans = append(r.loans, loan)
}

// AppendPayment adds a payment to the end of the collection.
func (r *LoanRepositoryMemory) AppendPayment(payment domain.Payment) {
	r.payments = append(r.payments, payment)
}

// LoanCount returns the number of loans held.
func (r *LoanRepositoryMemory) LoanCount() int {
	return len(r.loans)
}

// PaymentCount returns the number of payments held, across all loans.
func (r *LoanRepositoryMemory) PaymentCount() int {
	return len(r.payments)
}

// Snapshot returns value copies of both collections.
func (r *LoanRepositoryMemory) Snapshot() ([]domain.Loan, []domain.Payment) {
	loans := make([]domain.Loan, 0, len(r.loans))
	for _, loan := range r.loans {
		loans = append(loans, *loan)
	}
	payments := make([]domain.Payment, len(r.payments))
	copy(payments, r.payments)
	return loans, payments
}
