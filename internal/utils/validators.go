package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// RegisterCustomValidators installs the enum validators used by DTO binding
// tags on gin's validator engine. Must run once before the router serves.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
		switch domain.TransactionType(fl.Field().String()) {
		case domain.Income, domain.Expense:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
		switch domain.PaymentMethod(fl.Field().String()) {
		case domain.Cash, domain.Card:
			return true
		}
		return false
	})
}
