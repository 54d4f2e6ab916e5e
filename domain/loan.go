package domain

// Loan is a tracked loan. RemainingBalance starts at Principal and is
// decremented as payments are recorded; it never goes below zero.
type Loan struct {
	ID               int
	Name             string
	InterestRate     float64
	Principal        int
	DueDate          Date
	RemainingBalance float64
}

// Payment is a single repayment against a loan. Immutable once recorded.
type Payment struct {
	ID          int
	LoanID      int
	PaymentDate Date
	Amount      float64
}

// LoanInput carries the caller-supplied fields for creating a loan.
type LoanInput struct {
	Name         string
	InterestRate float64
	Principal    int
	DueDate      Date
}

// PaymentInput carries the caller-supplied fields for recording a payment.
type PaymentInput struct {
	LoanID      int
	PaymentDate Date
	Amount      float64
}
