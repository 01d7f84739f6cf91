// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"saheminvest/internal/models"
	"saheminvest/internal/money"
)

var hundred = decimal.NewFromInt(100)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom types and tags on v.
func RegisterOn(v *validator.Validate) {
	// Amounts and percents are validated through their decimal string form.
	v.RegisterCustomTypeFunc(decimalString, money.Money{}, decimal.Decimal{})

	_ = v.RegisterValidation("money_positive", validateMoneyPositive)
	_ = v.RegisterValidation("money_nonneg", validateMoneyNonNegative)
	_ = v.RegisterValidation("percent", validatePercent)
	_ = v.RegisterValidation("distribution_type", validateDistributionType)
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("deal_status", validateDealStatus)
}

func decimalString(field reflect.Value) interface{} {
	switch value := field.Interface().(type) {
	case money.Money:
		return value.Decimal().String()
	case decimal.Decimal:
		return value.String()
	}
	return nil
}

func parseDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	return d, err == nil
}

// validateMoneyPositive accepts amounts above zero with at most two decimals.
func validateMoneyPositive(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && d.IsPositive() && d.Exponent() >= -money.Scale
}

func validateMoneyNonNegative(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && !d.IsNegative() && d.Exponent() >= -money.Scale
}

func validatePercent(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && !d.IsNegative() && !d.GreaterThan(hundred)
}

func validateDistributionType(fl validator.FieldLevel) bool {
	switch models.DistributionType(fl.Field().String()) {
	case models.DistributionTypePartial, models.DistributionTypeFinal:
		return true
	}
	return false
}

// validateUserRole accepts the roles open to self-registration.
func validateUserRole(fl validator.FieldLevel) bool {
	switch models.Role(fl.Field().String()) {
	case models.RoleInvestor, models.RolePartner:
		return true
	}
	return false
}

func validateDealStatus(fl validator.FieldLevel) bool {
	switch models.DealStatus(fl.Field().String()) {
	case models.DealStatusDraft, models.DealStatusPublished, models.DealStatusActive,
		models.DealStatusFunded, models.DealStatusCompleted, models.DealStatusCancelled:
		return true
	}
	return false
}
