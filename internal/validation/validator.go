package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

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

	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("institution_id", validateInstitutionID)
	_ = v.RegisterValidation("month_key", validateMonthKey)
	_ = v.RegisterValidation("link_product", validateLinkProduct)

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

// validateISODate validates a calendar date in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

var institutionIDPattern = regexp.MustCompile(`^ins_[A-Za-z0-9_]+$`)

// validateInstitutionID validates an aggregator institution identifier
func validateInstitutionID(fl validator.FieldLevel) bool {
	return institutionIDPattern.MatchString(fl.Field().String())
}

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// validateMonthKey validates a calendar month in YYYY-MM form
func validateMonthKey(fl validator.FieldLevel) bool {
	return monthKeyPattern.MatchString(fl.Field().String())
}

// validateLinkProduct validates that a link product is one of the supported set
func validateLinkProduct(fl validator.FieldLevel) bool {
	product := strings.ToLower(fl.Field().String())
	validProducts := map[string]bool{
		"transactions": true,
		"auth":         true,
		"identity":     true,
	}
	return validProducts[product]
}
