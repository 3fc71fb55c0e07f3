// Package validation wires go-playground/validator with English
// translations. Only the first violation of a request payload is
// reported back to the caller.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// dateTokenPattern matches the dd/mm/yy tokens used in competition date
// ranges.
var dateTokenPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)

// deadlineLayouts are the accepted formats for competition deadlines.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDate parses a competition deadline in any accepted layout.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%q is not a valid date", value)
}

// Validator performs declarative struct validation with translated
// error messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with English translations and the custom rules
// used by the competition schema.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go struct field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register validator translations: %w", err)
	}

	if err := validate.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, err
	}

	if err := validate.RegisterValidation("datetoken", func(fl validator.FieldLevel) bool {
		return dateTokenPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	if err := registerCustomMessage(validate, trans, "calendardate", "{0} must be a valid date"); err != nil {
		return nil, err
	}

	if err := registerCustomMessage(validate, trans, "datetoken", "{0} must match the dd/mm/yy format"); err != nil {
		return nil, err
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// Check validates the given struct and returns the first violation as an
// error with a human-readable message, or nil if the struct is valid.
func (v *Validator) Check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return errors.New(validationErrors[0].Translate(v.trans))
	}

	return err
}

func registerCustomMessage(validate *validator.Validate, trans ut.Translator, tag, message string) error {
	return validate.RegisterTranslation(
		tag,
		trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}
