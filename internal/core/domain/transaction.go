package domain

import "time"

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// PaymentMethod records how an expense was paid. Optional on a transaction.
type PaymentMethod string

const (
	Cash PaymentMethod = "CASH"
	Card PaymentMethod = "CARD"
)

// Transaction represents a single income or expense entry owned by one user.
// Amount is in minor currency units; its polarity is implied by TransactionType.
type Transaction struct {
	TransactionID   int64           `json:"transactionID"`
	UserID          string          `json:"userID"` // FK -> User.userID, set at creation, never mutated
	CategoryID      int64           `json:"categoryID"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	PaymentMethod   *PaymentMethod  `json:"paymentMethod,omitempty"`
	Description     *string         `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	Category        *Category       `json:"category,omitempty"` // resolved on reads, not persisted here
	AuditFields
}
