package http

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/wanjiru121/loan-service/domain"
	"github.com/wanjiru121/loan-service/service"
)

// dateScalar maps domain.Date to a "YYYY-MM-DD" GraphQL scalar.
var dateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "Calendar date in YYYY-MM-DD form.",
	Serialize: func(value interface{}) interface{} {
		switch d := value.(type) {
		case domain.Date:
			return d.String()
		case *domain.Date:
			return d.String()
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		d, err := domain.ParseDate(s)
		if err != nil {
			return nil
		}
		return d
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		sv, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		d, err := domain.ParseDate(sv.Value)
		if err != nil {
			return nil
		}
		return d
	},
})

func loanFromSource(src interface{}) (*domain.Loan, bool) {
	switch l := src.(type) {
	case *domain.Loan:
		return l, true
	case domain.Loan:
		return &l, true
	}
	return nil, false
}

func paymentFromSource(src interface{}) (domain.Payment, bool) {
	switch p := src.(type) {
	case domain.Payment:
		return p, true
	case *domain.Payment:
		return *p, true
	}
	return domain.Payment{}, false
}

// NewSchema builds the GraphQL schema over the loan service. Field names
// are snake_case to match the persisted record layout.
func NewSchema(svc *service.LoanService) (graphql.Schema, error) {

	paymentType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "LoanPayment",
		Description: "An individual payment made against a loan.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					payment, _ := paymentFromSource(p.Source)
					return payment.ID, nil
				},
			},
			"loan_id": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					payment, _ := paymentFromSource(p.Source)
					return payment.LoanID, nil
				},
			},
			"payment_date": &graphql.Field{
				Type: dateScalar,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					payment, _ := paymentFromSource(p.Source)
					return payment.PaymentDate, nil
				},
			},
			"amount": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					payment, _ := paymentFromSource(p.Source)
					return payment.Amount, nil
				},
			},
		},
	})

	loanType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "ExistingLoans",
		Description: "A loan with its payments, status and remaining balance.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return loan.ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return loan.Name, nil
				},
			},
			"interest_rate": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return loan.InterestRate, nil
				},
			},
			"principal": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return loan.Principal, nil
				},
			},
			"due_date": &graphql.Field{
				Type: dateScalar,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return loan.DueDate, nil
				},
			},
			"loan_payments": &graphql.Field{
				Type:        graphql.NewList(paymentType),
				Description: "List of loan payments",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return svc.PaymentsByLoanID(loan.ID), nil
				},
			},
			"payment_status": &graphql.Field{
				Type:        graphql.String,
				Description: "Payment status of the loan",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return string(svc.PaymentStatus(loan)), nil
				},
			},
			"remaining_balance": &graphql.Field{
				Type:        graphql.Float,
				Description: "Remaining loan balance",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, _ := loanFromSource(p.Source)
					return svc.RemainingBalance(loan), nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"loans": &graphql.Field{
				Type: graphql.NewList(loanType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.AllLoans(), nil
				},
			},
			"loan": &graphql.Field{
				Type: loanType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(int)
					if !ok {
						return nil, nil
					}
					loan, err := svc.LoanByID(id)
					if errors.Is(err, domain.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return loan, nil
				},
			},
		},
	})

	createLoanPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateLoan",
		Fields: graphql.Fields{
			"loan": &graphql.Field{Type: loanType},
		},
	})

	makePaymentPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "MakePayment",
		Fields: graphql.Fields{
			"payment": &graphql.Field{Type: paymentType},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"create_loan": &graphql.Field{
				Type: createLoanPayload,
				Args: graphql.FieldConfigArgument{
					"name":          &graphql.ArgumentConfig{Type: graphql.String},
					"interest_rate": &graphql.ArgumentConfig{Type: graphql.Float},
					"principal":     &graphql.ArgumentConfig{Type: graphql.Int},
					"due_date":      &graphql.ArgumentConfig{Type: dateScalar},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, err := loanInputFromArgs(p.Args)
					if err != nil {
						return nil, err
					}
					loan, err := svc.CreateLoan(input)
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"loan": loan}, nil
				},
			},
			"make_payment": &graphql.Field{
				Type: makePaymentPayload,
				Args: graphql.FieldConfigArgument{
					"loan_id":      &graphql.ArgumentConfig{Type: graphql.Int},
					"payment_date": &graphql.ArgumentConfig{Type: dateScalar},
					"amount":       &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, err := paymentInputFromArgs(p.Args)
					if err != nil {
						return nil, err
					}
					payment, err := svc.RecordPayment(input)
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"payment": payment}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func loanInputFromArgs(args map[string]interface{}) (domain.LoanInput, error) {
	var input domain.LoanInput
	if name, ok := args["name"].(string); ok {
		input.Name = name
	}
	if rate, ok := args["interest_rate"].(float64); ok {
		input.InterestRate = rate
	}
	if principal, ok := args["principal"].(int); ok {
		input.Principal = principal
	}
	due, ok := args["due_date"].(domain.Date)
	if !ok {
		return domain.LoanInput{}, fmt.Errorf("due_date must be a YYYY-MM-DD date: %w", domain.ErrValidation)
	}
	input.DueDate = due
	return input, nil
}

func paymentInputFromArgs(args map[string]interface{}) (domain.PaymentInput, error) {
	var input domain.PaymentInput
	if loanID, ok := args["loan_id"].(int); ok {
		input.LoanID = loanID
	}
	if amount, ok := args["amount"].(float64); ok {
		input.Amount = amount
	}
	date, ok := args["payment_date"].(domain.Date)
	if !ok {
		return domain.PaymentInput{}, fmt.Errorf("payment_date must be a YYYY-MM-DD date: %w", domain.ErrValidation)
	}
	input.PaymentDate = date
	return input, nil
}
