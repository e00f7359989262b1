package domain_test

import (
	"testing"

	"github.com/openbanklab/bankapi/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string { return &s }

func TestTransaction_Contribution(t *testing.T) {
	accA := "a1b2c3d4e5f60708090a"
	accB := "0a0908070605f4e3d2c1"

	tests := []struct {
		name string
		txn  domain.Transaction
		want decimal.Decimal
	}{
		{
			name: "transfer credits the receiver",
			txn: domain.Transaction{
				Type:        domain.Transfer,
				AccountFrom: stringPtr(accB),
				AccountTo:   stringPtr(accA),
				Amount:      decimal.NewFromInt(40),
			},
			want: decimal.NewFromInt(40),
		},
		{
			name: "transfer debits the sender",
			txn: domain.Transaction{
				Type:        domain.Transfer,
				AccountFrom: stringPtr(accA),
				AccountTo:   stringPtr(accB),
				Amount:      decimal.NewFromInt(40),
			},
			want: decimal.NewFromInt(-40),
		},
		{
			name: "deposit is type-driven positive",
			txn: domain.Transaction{
				Type:        domain.Deposit,
				AccountFrom: stringPtr(accA),
				Amount:      decimal.NewFromInt(100),
			},
			want: decimal.NewFromInt(100),
		},
		{
			name: "withdrawal is type-driven negative",
			txn: domain.Transaction{
				Type:        domain.Withdrawal,
				AccountFrom: stringPtr(accA),
				Amount:      decimal.NewFromInt(25),
			},
			want: decimal.NewFromInt(-25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.txn.Contribution(accA)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSumBalance(t *testing.T) {
	accA := "a1b2c3d4e5f60708090a"
	accB := "0a0908070605f4e3d2c1"

	t.Run("no transactions folds to zero", func(t *testing.T) {
		assert.True(t, decimal.Zero.Equal(domain.SumBalance(accA, nil)))
	})

	t.Run("deposit then transfer out", func(t *testing.T) {
		history := []domain.Transaction{
			{Type: domain.Deposit, AccountFrom: stringPtr(accA), Amount: decimal.NewFromInt(100)},
			{Type: domain.Transfer, AccountFrom: stringPtr(accA), AccountTo: stringPtr(accB), Amount: decimal.NewFromInt(40)},
		}
		assert.True(t, decimal.NewFromInt(60).Equal(domain.SumBalance(accA, history)))
		assert.True(t, decimal.NewFromInt(40).Equal(domain.SumBalance(accB, history[1:])))
	})

	t.Run("withdrawal reduces the balance", func(t *testing.T) {
		history := []domain.Transaction{
			{Type: domain.Deposit, AccountFrom: stringPtr(accA), Amount: decimal.NewFromFloat(10.50)},
			{Type: domain.Withdrawal, AccountFrom: stringPtr(accA), Amount: decimal.NewFromFloat(0.50)},
		}
		assert.True(t, decimal.NewFromInt(10).Equal(domain.SumBalance(accA, history)))
	})

	t.Run("fold is idempotent", func(t *testing.T) {
		history := []domain.Transaction{
			{Type: domain.Deposit, AccountFrom: stringPtr(accA), Amount: decimal.NewFromInt(7)},
		}
		first := domain.SumBalance(accA, history)
		second := domain.SumBalance(accA, history)
		assert.True(t, first.Equal(second))
	})
}
