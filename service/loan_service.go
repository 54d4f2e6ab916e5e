package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/wanjiru121/loan-service/domain"
	"github.com/wanjiru121/loan-service/repository"
)

// Storage persists the repository's collections. The loan service saves
// after every successful mutation.
type Storage interface {
	Save(loans []domain.Loan, payments []domain.Payment) error
}

// LoanService owns all access to the loan and payment collections: reads,
// status derivation, and the two mutations. Mutations take the write lock
// around validate, mutate and persist, so id assignment and balance
// decrements never race; reads take the read lock since the HTTP server
// handles requests concurrently.
type LoanService struct {
	mu        sync.RWMutex
	repo      repository.LoanRepository
	store     Storage
	cache     repository.CacheRepository
	graceDays int
}

// NewLoanService creates a LoanService. A graceDays of zero or less falls
// back to DefaultGracePeriodDays.
func NewLoanService(
	repo repository.LoanRepository,
	store Storage,
	cache repository.CacheRepository,
	graceDays int,
) *LoanService {
	if graceDays <= 0 {
		graceDays = DefaultGracePeriodDays
	}
	return &LoanService{repo: repo, store: store, cache: cache, graceDays: graceDays}
}

// AllLoans returns every loan in insertion order.
func (s *LoanService) AllLoans() []*domain.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.repo.AllLoans()
}

// LoanByID returns the loan with the given id.
func (s *LoanService) LoanByID(id int) (*domain.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loan, ok := s.repo.LoanByID(id)
	if !ok {
		return nil, fmt.Errorf("loan does not exist: %w", domain.ErrNotFound)
	}
	return loan, nil
}

// PaymentsByLoanID returns a loan's payments in the order they were
// recorded.
func (s *LoanService) PaymentsByLoanID(id int) []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.repo.PaymentsByLoanID(id)
}

// RemainingBalance derives a loan's outstanding balance from its payments.
func (s *LoanService) RemainingBalance(loan *domain.Loan) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return RemainingBalance(loan, s.repo.PaymentsByLoanID(loan.ID))
}

// PaymentStatus derives a loan's payment status, consulting the cache
// first. Cache failures are not fatal; the status is recomputed.
func (s *LoanService) PaymentStatus(loan *domain.Loan) domain.PaymentStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := statusCacheKey(loan.ID)
	if cached, ok := s.cache.Get(key); ok {
		return domain.PaymentStatus(cached)
	}

	status := StatusOf(loan, s.repo.PaymentsByLoanID(loan.ID), s.graceDays)

	if err := s.cache.Set(key, string(status)); err != nil {
		log.Printf("Warning: failed to cache status for loan %d: %v", loan.ID, err)
	}
	return status
}

// CreateLoan appends a new loan with the next sequential id and persists
// both collections. The remaining balance starts at the principal.
func (s *LoanService) CreateLoan(input domain.LoanInput) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan := &domain.Loan{
		ID:               s.repo.LoanCount() + 1,
		Name:             input.Name,
		InterestRate:     input.InterestRate,
		Principal:        input.Principal,
		DueDate:          input.DueDate,
		RemainingBalance: float64(input.Principal),
	}
	s.repo.AppendLoan(loan)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return loan, nil
}

// RecordPayment validates and records a payment against a loan, decrements
// the loan's remaining balance, and persists both collections. Validations
// run in a fixed order and the first failure returns before anything is
// mutated.
func (s *LoanService) RecordPayment(input domain.PaymentInput) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be greater than zero: %w", domain.ErrValidation)
	}

	loan, ok := s.repo.LoanByID(input.LoanID)
	if !ok {
		return nil, fmt.Errorf("loan does not exist: %w", domain.ErrNotFound)
	}

	if loan.RemainingBalance <= 0 {
		return nil, fmt.Errorf("the loan is already fully paid, no further payments can be made: %w", domain.ErrValidation)
	}

	if input.Amount > loan.RemainingBalance {
		return nil, fmt.Errorf("payment amount exceeds the remaining loan balance of %.2f: %w",
			loan.RemainingBalance, domain.ErrValidation)
	}

	payment := domain.Payment{
		ID:          s.repo.PaymentCount() + 1,
		LoanID:      input.LoanID,
		PaymentDate: input.PaymentDate,
		Amount:      input.Amount,
	}
	s.repo.AppendPayment(payment)
	loan.RemainingBalance -= input.Amount

	if err := s.cache.Del(statusCacheKey(loan.ID)); err != nil {
		log.Printf("Warning: failed to invalidate status cache for loan %d: %v", loan.ID, err)
	}

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *LoanService) persist() error {
	loans, payments := s.repo.Snapshot()
	return s.store.Save(loans, payments)
}

func statusCacheKey(loanID int) string {
	return fmt.Sprintf("loan:%d:status", loanID)
}
