package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dpositive", decimalPositive)
		_ = v.RegisterValidation("dnonneg", decimalNonNegative)
	}
}

// decimalPositive validates that a decimal field is strictly positive
func decimalPositive(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && value.IsPositive()
}

// decimalNonNegative validates that a decimal field is zero or positive
func decimalNonNegative(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !value.IsNegative()
}
