package http

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjiru121/loan-service/domain"
	"github.com/wanjiru121/loan-service/repository"
	"github.com/wanjiru121/loan-service/service"
)

type fakeStore struct{}

func (fakeStore) Save(loans []domain.Loan, payments []domain.Payment) error {
	return nil
}

func newTestSchema(t *testing.T) (graphql.Schema, *service.LoanService) {
	t.Helper()

	loans := []domain.Loan{
		{ID: 1, Name: "Loan 1", InterestRate: 5.0, Principal: 1000,
			DueDate: domain.MustParseDate("2025-05-01"), RemainingBalance: 500},
		{ID: 2, Name: "Loan 2", InterestRate: 7.0, Principal: 2000,
			DueDate: domain.MustParseDate("2025-06-01"), RemainingBalance: 1500},
	}
	payments := []domain.Payment{
		{ID: 1, LoanID: 1, PaymentDate: domain.MustParseDate("2025-03-01"), Amount: 500},
	}

	repo := repository.NewLoanRepositoryFrom(loans, payments)
	svc := service.NewLoanService(repo, fakeStore{}, repository.NewMockCache(), 0)

	schema, err := NewSchema(svc)
	require.NoError(t, err)
	return schema, svc
}

func execute(t *testing.T, schema graphql.Schema, query string, vars map[string]interface{}) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
	})
}

func TestQueryLoans(t *testing.T) {
	schema, _ := newTestSchema(t)

	result := execute(t, schema, `
		query {
			loans {
				id
				name
				interest_rate
				principal
				due_date
				remaining_balance
			}
		}
	`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	loans := data["loans"].([]interface{})
	require.Len(t, loans, 2)

	first := loans[0].(map[string]interface{})
	assert.Equal(t, 1, first["id"])
	assert.Equal(t, "Loan 1", first["name"])
	assert.Equal(t, 5.0, first["interest_rate"])
	assert.Equal(t, 1000, first["principal"])
	assert.Equal(t, "2025-05-01", first["due_date"])
	// Derived from payments, not the stored field.
	assert.Equal(t, 500.0, first["remaining_balance"])

	second := loans[1].(map[string]interface{})
	assert.Equal(t, 2000.0, second["remaining_balance"])
}

func TestQueryLoan_WithDerivedFields(t *testing.T) {
	schema, _ := newTestSchema(t)

	result := execute(t, schema, `
		query getLoan($id: Int!) {
			loan(id: $id) {
				id
				payment_status
				remaining_balance
				loan_payments {
					id
					loan_id
					payment_date
					amount
				}
			}
		}
	`, map[string]interface{}{"id": 1})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	loan := data["loan"].(map[string]interface{})
	assert.Equal(t, string(domain.StatusPartiallyPaid), loan["payment_status"])
	assert.Equal(t, 500.0, loan["remaining_balance"])

	paymentList := loan["loan_payments"].([]interface{})
	require.Len(t, paymentList, 1)
	payment := paymentList[0].(map[string]interface{})
	assert.Equal(t, 1, payment["id"])
	assert.Equal(t, 1, payment["loan_id"])
	assert.Equal(t, "2025-03-01", payment["payment_date"])
	assert.Equal(t, 500.0, payment["amount"])
}

func TestQueryLoan_NotFoundIsNull(t *testing.T) {
	schema, _ := newTestSchema(t)

	result := execute(t, schema, `query { loan(id: 99) { id } }`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Nil(t, data["loan"])
}

func TestMutationCreateLoan(t *testing.T) {
	schema, svc := newTestSchema(t)

	result := execute(t, schema, `
		mutation {
			create_loan(name: "Loan 3", interest_rate: 4.5, principal: 3000, due_date: "2025-07-01") {
				loan {
					id
					name
					remaining_balance
				}
			}
		}
	`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	loan := data["create_loan"].(map[string]interface{})["loan"].(map[string]interface{})
	assert.Equal(t, 3, loan["id"])
	assert.Equal(t, "Loan 3", loan["name"])
	assert.Equal(t, 3000.0, loan["remaining_balance"])

	created, err := svc.LoanByID(3)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", created.DueDate.String())
}

func TestMutationMakePayment(t *testing.T) {
	schema, svc := newTestSchema(t)

	result := execute(t, schema, `
		mutation {
			make_payment(loan_id: 2, payment_date: "2025-04-01", amount: 500) {
				payment {
					id
					loan_id
					payment_date
					amount
				}
			}
		}
	`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	payment := data["make_payment"].(map[string]interface{})["payment"].(map[string]interface{})
	assert.Equal(t, 2, payment["id"])
	assert.Equal(t, 2, payment["loan_id"])
	assert.Equal(t, "2025-04-01", payment["payment_date"])
	assert.Equal(t, 500.0, payment["amount"])

	loan, err := svc.LoanByID(2)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, loan.RemainingBalance)
}

func TestMutationMakePayment_Errors(t *testing.T) {
	schema, _ := newTestSchema(t)

	tests := []struct {
		name     string
		mutation string
		wantMsg  string
	}{
		{
			name:     "non-positive amount",
			mutation: `mutation { make_payment(loan_id: 1, payment_date: "2025-04-01", amount: -100) { payment { id } } }`,
			wantMsg:  "greater than zero",
		},
		{
			name:     "unknown loan",
			mutation: `mutation { make_payment(loan_id: 99, payment_date: "2025-04-01", amount: 100) { payment { id } } }`,
			wantMsg:  "does not exist",
		},
		{
			name:     "exceeds remaining balance",
			mutation: `mutation { make_payment(loan_id: 2, payment_date: "2025-04-01", amount: 2000) { payment { id } } }`,
			wantMsg:  "exceeds the remaining loan balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := execute(t, schema, tt.mutation, nil)
			require.NotEmpty(t, result.Errors)
			assert.Contains(t, result.Errors[0].Message, tt.wantMsg)
		})
	}
}
