package mapping

import (
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	"github.com/jkim-dev/budget_tracker_app/internal/models"
)

// ToModelCategory converts a domain category to its database representation.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a database category row to the domain type.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of category rows to domain categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
