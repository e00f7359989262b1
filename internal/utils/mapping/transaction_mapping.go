package mapping

import (
	"github.com/openbanklab/bankapi/internal/core/domain"
	"github.com/openbanklab/bankapi/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Seq is left zero; the database assigns it on insert.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          models.TransactionType(d.Type),
		AccountFrom:   d.AccountFrom,
		AccountTo:     d.AccountTo,
		Amount:        d.Amount,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		AccountFrom:   m.AccountFrom,
		AccountTo:     m.AccountTo,
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
