package customvalidator

import (
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the domain validation rules on the
// shared validator instance. Priority words and durations are not
// validated here on purpose: unknown priorities resolve to medium and
// unparsable durations to zero hours during mapping.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("maintenance_type", isMaintenanceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("status_word", isStatusWord); err != nil {
		return err
	}
	return nil
}

func isMaintenanceType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "corrective", "preventive":
		return true
	}
	return false
}

func isStatusWord(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "new", "in-progress", "completed", "scrap":
		return true
	}
	return false
}
