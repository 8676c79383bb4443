package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"repair-tracking/internal/entities"
)

// RegisterCustomValidations registers the domain validation rules on the
// given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_type", isCatalogEquipmentType); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isKnownStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}

	return nil
}

func isCatalogEquipmentType(fl validator.FieldLevel) bool {
	return entities.IsCatalogEquipmentType(fl.Field().String())
}

func isKnownStatus(fl validator.FieldLevel) bool {
	_, err := entities.ParseStatus(fl.Field().String())
	return err == nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}
