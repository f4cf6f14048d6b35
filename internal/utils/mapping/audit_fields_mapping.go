package mapping

import (
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	"github.com/jkim-dev/budget_tracker_app/internal/models"
)

func toModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
