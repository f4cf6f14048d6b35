package mapping

import (
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	"github.com/jkim-dev/budget_tracker_app/internal/models"
)

// ToModelUser converts a domain user to its database representation.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		FullName:     d.FullName,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		IsSuperuser:  d.IsSuperuser,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a database user row to the domain type.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		IsSuperuser:  m.IsSuperuser,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}
