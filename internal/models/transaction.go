package models

import "time"

// Transaction is the database representation of a transaction row.
type Transaction struct {
	TransactionID   int64     `db:"transaction_id"`
	UserID          string    `db:"user_id"`
	CategoryID      int64     `db:"category_id"`
	Amount          int64     `db:"amount"`
	TransactionType string    `db:"transaction_type"`
	PaymentMethod   *string   `db:"payment_method"`
	Description     *string   `db:"description"`
	TransactionDate time.Time `db:"transaction_date"`
	AuditFields

	// CategoryName is populated by list queries that join categories.
	CategoryName        *string `db:"category_name"`
	CategoryDescription *string `db:"category_description"`
}
