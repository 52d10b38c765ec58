package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"healthreach_backend/internal/models"
)

// registerCustomRules registers the domain validation tags. A failed
// registration is a startup error, not a request error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-school-type", validateSchoolType)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateSchoolType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// Emptiness is the 'required' tag's job.
		return true
	}

	switch models.SchoolType(value) {
	case models.SchoolTypeJHS, models.SchoolTypeSHS, models.SchoolTypeNMTC, models.SchoolTypeUniversity:
		return true
	}
	return false
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusApproved, models.ApplicationStatusRejected:
		return true
	}
	return false
}
