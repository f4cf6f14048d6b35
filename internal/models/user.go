package models

// User is the database representation of a user row.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	FullName     string `db:"full_name"`
	PasswordHash string `db:"hashed_password"`
	IsActive     bool   `db:"is_active"`
	IsSuperuser  bool   `db:"is_superuser"`
	AuditFields
}
