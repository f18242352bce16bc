package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"laytime-calculator/internal/model"

	"github.com/go-playground/validator/v10"
)

type ValidationRule struct {
	Rule func(v *validator.Validate)
}

// Validator is a wrapper around the actual validator.
// It sets up the validator and turns the first failing field into a
// model.InvalidInputError, named after the field's yaml/json key.
type Validator struct {
	validator *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	out := &Validator{validator: v}
	out.Register(DefaultRules()...)
	return out
}

func (v *Validator) Register(rules ...ValidationRule) {
	for _, r := range rules {
		r.Rule(v.validator)
	}
}

func (v *Validator) Struct(s any) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &model.InvalidInputError{Field: trimRoot(fe.Namespace()), Reason: reason(fe)}
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"yaml", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// trimRoot drops the top-level struct name from a namespace like
// "LaytimeConfig.terms.rate_per_day".
func trimRoot(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be >= %s (got %v)", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s] (got %q)", fe.Param(), fe.Value())
	case "hhmm":
		return fmt.Sprintf("must be a time as HH:MM (got %q)", fe.Value())
	case "isodate":
		return fmt.Sprintf("must be a date as YYYY-MM-DD (got %q)", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
