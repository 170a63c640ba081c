package validation

import (
	"reflect"
	"regexp"
	"strings"

	"chequemate/internal/daterange"
	"chequemate/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("instrument_kind", validateInstrumentKind)
	_ = v.RegisterValidation("instrument_status", validateInstrumentStatus)
	_ = v.RegisterValidation("settled_status", validateSettledStatus)
	_ = v.RegisterValidation("quick_range", validateQuickRange)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("iana_timezone", validateTimezone)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateInstrumentKind validates that the kind is deposit, cheque or withdrawal
func validateInstrumentKind(fl validator.FieldLevel) bool {
	return models.IsValidInstrumentKind(fl.Field().String())
}

// validateInstrumentStatus validates that the status is pending, deducted or cleared
func validateInstrumentStatus(fl validator.FieldLevel) bool {
	return models.IsValidInstrumentStatus(fl.Field().String())
}

// validateSettledStatus validates a terminal status (deducted or cleared);
// requests can never move an instrument back to pending
func validateSettledStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	return models.IsValidInstrumentStatus(status) && status != models.InstrumentStatusPending
}

// validateQuickRange validates a named quick range kind
func validateQuickRange(fl validator.FieldLevel) bool {
	return daterange.IsValidQuickKind(fl.Field().String())
}

// validateCalendarDate validates a YYYY-MM-DD date string
func validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	_, err := daterange.ParseKey(value)
	return err == nil
}

// validatePositiveAmount validates that a string-encoded decimal amount is
// greater than zero with at most 2 decimal places
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	if amount == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d+(\.\d{1,2})?$`, amount)
	if !matched {
		return false
	}

	return strings.TrimLeft(strings.ReplaceAll(amount, ".", ""), "0") != ""
}

// validateTimezone validates an IANA timezone name without loading it; the
// auth layer does the authoritative LoadLocation check
func validateTimezone(fl validator.FieldLevel) bool {
	tz := fl.Field().String()
	if tz == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Za-z_]+(/[A-Za-z0-9_+\-]+){0,2}$`, tz)
	return matched
}
