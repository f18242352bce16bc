package validator

import (
	"laytime-calculator/internal/model"

	"github.com/go-playground/validator/v10"
)

func DefaultRules() []ValidationRule {
	return []ValidationRule{
		{Rule: func(v *validator.Validate) { _ = v.RegisterValidation("hhmm", hhmmValidator) }},
		{Rule: func(v *validator.Validate) { _ = v.RegisterValidation("isodate", isoDateValidator) }},
	}
}

func hhmmValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := model.ParseClock(val)
	return err == nil
}

func isoDateValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := model.ParseDate(val)
	return err == nil
}
