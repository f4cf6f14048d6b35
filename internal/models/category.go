package models

// Category is the database representation of a category row.
type Category struct {
	CategoryID  int64  `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}
