package mapping

import (
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	"github.com/jkim-dev/budget_tracker_app/internal/models"
)

// ToModelTransaction converts a domain transaction to its database representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var method *string
	if d.PaymentMethod != nil {
		m := string(*d.PaymentMethod)
		method = &m
	}
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		CategoryID:      d.CategoryID,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		PaymentMethod:   method,
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		AuditFields:     toModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a database transaction row to the domain type.
// A joined category name, when present, is attached as a resolved Category.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	txn := domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		CategoryID:      m.CategoryID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		PaymentMethod:   method,
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		AuditFields:     toDomainAuditFields(m.AuditFields),
	}
	if m.CategoryName != nil {
		cat := domain.Category{
			CategoryID: m.CategoryID,
			Name:       *m.CategoryName,
		}
		if m.CategoryDescription != nil {
			cat.Description = *m.CategoryDescription
		}
		txn.Category = &cat
	}
	return txn
}

// ToDomainTransactionSlice converts a slice of transaction rows to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
