package domain

// User represents a registered user of the application.
type User struct {
	UserID       string `json:"userID"` // UUID
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	IsSuperuser  bool   `json:"isSuperuser"`
	AuditFields
}
