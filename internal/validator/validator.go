// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"subtrack/internal/billing"
	"subtrack/internal/types"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)

	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("billing_cycle", validateBillingCycle)
	_ = v.RegisterValidation("subscription_status", validateSubscriptionStatus)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("summary_period", validateSummaryPeriod)
	_ = v.RegisterValidation("sort_order", validateSortOrder)

	// Money and dates are structs; expose them as scalars so that tags such
	// as required and gte work on them.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, types.Date{})
}

// fieldName reports fields by their json or form name.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Message describes a failed field validation for API clients.
func Message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s.", field, fe.Param())
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", field)
	case "iso4217":
		return fmt.Sprintf("The %s field must be an ISO 4217 currency code.", field)
	case "hex_color":
		return fmt.Sprintf("The %s field must be a hex color.", field)
	case "billing_cycle":
		return fmt.Sprintf("The %s field must be one of: weekly, monthly, quarterly, yearly.", field)
	case "subscription_status":
		return fmt.Sprintf("The %s field must be one of: active, paused, cancelled.", field)
	case "budget_period":
		return fmt.Sprintf("The %s field must be one of: monthly, yearly, weekly.", field)
	case "summary_period":
		return fmt.Sprintf("The %s field must be one of: today, week, month, year.", field)
	case "sort_order":
		return fmt.Sprintf("The %s field must be asc or desc.", field)
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(types.Date); ok {
		return d.Time
	}
	return nil
}

func validateISO4217(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return strings.ToUpper(code) == code && IsCurrency(code)
}

// IsCurrency reports whether code is an ISO 4217 currency code, ignoring case.
func IsCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	_, err := currency.ParseISO(strings.ToUpper(code))
	return err == nil
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateBillingCycle(fl validator.FieldLevel) bool {
	return billing.Cycle(fl.Field().String()).Valid()
}

func validateSubscriptionStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "paused", "cancelled":
		return true
	}
	return false
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monthly", "yearly", "weekly":
		return true
	}
	return false
}

func validateSummaryPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "today", "week", "month", "year":
		return true
	}
	return false
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "asc", "desc":
		return true
	}
	return false
}
