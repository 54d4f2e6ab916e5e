package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjiru121/loan-service/domain"
)

func TestLoanRepositoryMemory_LookupAndOrder(t *testing.T) {
	repo := NewLoanRepositoryMemory()

	repo.AppendLoan(&domain.Loan{ID: 1, Name: "A"})
	repo.AppendLoan(&domain.Loan{ID: 2, Name: "B"})

	assert.Equal(t, 2, repo.LoanCount())

	loan, ok := repo.LoanByID(2)
	require.True(t, ok)
	assert.Equal(t, "B", loan.Name)

	_, ok = repo.LoanByID(3)
	assert.False(t, ok)

	all := repo.AllLoans()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
}

func TestLoanRepositoryMemory_PaymentsByLoanID(t *testing.T) {
	repo := NewLoanRepositoryMemory()

	repo.AppendPayment(domain.Payment{ID: 1, LoanID: 1, Amount: 100})
	repo.AppendPayment(domain.Payment{ID: 2, LoanID: 2, Amount: 200})
	repo.AppendPayment(domain.Payment{ID: 3, LoanID: 1, Amount: 300})

	assert.Equal(t, 3, repo.PaymentCount())

	payments := repo.PaymentsByLoanID(1)
	require.Len(t, payments, 2)
	// Insertion order, not date order.
	assert.Equal(t, 1, payments[0].ID)
	assert.Equal(t, 3, payments[1].ID)

	assert.Empty(t, repo.PaymentsByLoanID(9))
}

func TestNewLoanRepositoryFrom(t *testing.T) {
	loans := []domain.Loan{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	payments := []domain.Payment{{ID: 1, LoanID: 1, Amount: 100}}

	repo := NewLoanRepositoryFrom(loans, payments)

	assert.Equal(t, 2, repo.LoanCount())
	assert.Equal(t, 1, repo.PaymentCount())

	// Loans are held by pointer so in-place balance updates stick.
	loan, ok := repo.LoanByID(1)
	require.True(t, ok)
	loan.RemainingBalance = 42
	again, _ := repo.LoanByID(1)
	assert.Equal(t, 42.0, again.RemainingBalance)
}

func TestLoanRepositoryMemory_Snapshot(t *testing.T) {
	repo := NewLoanRepositoryMemory()
	repo.AppendLoan(&domain.Loan{ID: 1, Name: "A", RemainingBalance: 100})
	repo.AppendPayment(domain.Payment{ID: 1, LoanID: 1, Amount: 50})

	loans, payments := repo.Snapshot()
	require.Len(t, loans, 1)
	require.Len(t, payments, 1)

	// Snapshots are value copies, detached from the live collections.
	loans[0].RemainingBalance = 0
	live, _ := repo.LoanByID(1)
	assert.Equal(t, 100.0, live.RemainingBalance)
}

func TestMockCache(t *testing.T) {
	cache := NewMockCache()

	_, ok := cache.Get("k")
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", "v"))
	val, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", val)

	require.NoError(t, cache.Del("k"))
	_, ok = cache.Get("k")
	assert.False(t, ok)
}
