package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wanjiru121/loan-service/domain"
)

// FileStore persists the loan and payment collections to a single JSON file.
// Dates cross this boundary as "YYYY-MM-DD" strings and live in memory as
// domain.Date; that conversion is the store's whole job.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is not
// touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

type loanRecord struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	InterestRate     float64 `json:"interest_rate"`
	Principal        int     `json:"principal"`
	DueDate          string  `json:"due_date"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type paymentRecord struct {
	ID          int     `json:"id"`
	LoanID      int     `json:"loan_id"`
	PaymentDate string  `json:"payment_date"`
	Amount      float64 `json:"amount"`
}

type document struct {
	Loans    []loanRecord    `json:"loans"`
	Payments []paymentRecord `json:"loan_payments"`
}

// Load reads both collections from the backing file. It fails with
// domain.ErrNotFound when the file is absent and domain.ErrFormat when the
// content is not valid JSON, is missing either top-level collection, or
// holds a date that does not parse.
func (s *FileStore) Load() ([]domain.Loan, []domain.Payment, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("data file %q: %w", s.path, domain.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("reading %q: %v: %w", s.path, err, domain.ErrIO)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, nil, fmt.Errorf("parsing %q: %v: %w", s.path, err, domain.ErrFormat)
	}
	if _, ok := top["loans"]; !ok {
		return nil, nil, fmt.Errorf("%q is missing the \"loans\" collection: %w", s.path, domain.ErrFormat)
	}
	if _, ok := top["loan_payments"]; !ok {
		return nil, nil, fmt.Errorf("%q is missing the \"loan_payments\" collection: %w", s.path, domain.ErrFormat)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing %q: %v: %w", s.path, err, domain.ErrFormat)
	}

	loans := make([]domain.Loan, 0, len(doc.Loans))
	for _, rec := range doc.Loans {
		due, err := domain.ParseDate(rec.DueDate)
		if err != nil {
			return nil, nil, fmt.Errorf("loan %d has invalid due_date %q: %w", rec.ID, rec.DueDate, domain.ErrFormat)
		}
		loans = append(loans, domain.Loan{
			ID:               rec.ID,
			Name:             rec.Name,
			InterestRate:     rec.InterestRate,
			Principal:        rec.Principal,
			DueDate:          due,
			RemainingBalance: rec.RemainingBalance,
		})
	}

	payments := make([]domain.Payment, 0, len(doc.Payments))
	for _, rec := range doc.Payments {
		paid, err := domain.ParseDate(rec.PaymentDate)
		if err != nil {
			return nil, nil, fmt.Errorf("payment %d has invalid payment_date %q: %w", rec.ID, rec.PaymentDate, domain.ErrFormat)
		}
		payments = append(payments, domain.Payment{
			ID:          rec.ID,
			LoanID:      rec.LoanID,
			PaymentDate: paid,
			Amount:      rec.Amount,
		})
	}

	return loans, payments, nil
}

// Save writes both collections to the backing file, creating parent
// directories as needed. It fails with domain.ErrValidation when either
// collection is empty, domain.ErrPermission when the write is denied, and
// domain.ErrIO on any other I/O failure.
func (s *FileStore) Save(loans []domain.Loan, payments []domain.Payment) error {
	if len(loans) == 0 || len(payments) == 0 {
		return fmt.Errorf("no loans or loan payments to save: %w", domain.ErrValidation)
	}

	doc := document{
		Loans:    make([]loanRecord, 0, len(loans)),
		Payments: make([]paymentRecord, 0, len(payments)),
	}
	for _, loan := range loans {
		doc.Loans = append(doc.Loans, loanRecord{
			ID:               loan.ID,
			Name:             loan.Name,
			InterestRate:     loan.InterestRate,
			Principal:        loan.Principal,
			DueDate:          loan.DueDate.String(),
			RemainingBalance: loan.RemainingBalance,
		})
	}
	for _, payment := range payments {
		doc.Payments = append(doc.Payments, paymentRecord{
			ID:          payment.ID,
			LoanID:      payment.LoanID,
			PaymentDate: payment.PaymentDate.String(),
			Amount:      payment.Amount,
		})
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding loan data: %v: %w", err, domain.ErrIO)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return wrapWriteErr(dir, err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return wrapWriteErr(s.path, err)
	}
	return nil
}

func wrapWriteErr(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("writing %q: %v: %w", path, err, domain.ErrPermission)
	}
	return fmt.Errorf("writing %q: %v: %w", path, err, domain.ErrIO)
}
