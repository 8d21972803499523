package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds recruiting-domain validation tags.
func registerCustomRules(v *validator.Validate) error {
	// interaction_type: the three recruiter actions the swipe UI produces.
	if err := v.RegisterValidation("interaction_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "VIEW", "SWIPE_LEFT", "SWIPE_RIGHT":
			return true
		}
		return false
	}); err != nil {
		return err
	}

	return nil
}
