package domain

// Category groups transactions for reporting. Names are unique across the application.
type Category struct {
	CategoryID  int64  `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
