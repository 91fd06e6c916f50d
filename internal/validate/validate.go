// Package validate wraps the shared form validator. Failures are reported
// as *Error carrying the message a user should see.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var phonePattern = regexp.MustCompile(`^\d{10,11}$`)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// Local phone numbers: 10 or 11 digits, e.g. 08031234567
	Validate.RegisterValidation("ngphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// Error is a validation failure caught before any network call.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Invalid builds an *Error for checks done outside struct tags.
func Invalid(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Struct validates v and returns the first failure as *Error. The message
// comes from the failing field's `msg` tag when present.
func Struct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &Error{Field: fe.Field(), Message: message(v, fe)}
}

func message(v any, fe validator.FieldError) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if msg := f.Tag.Get("msg"); msg != "" {
				return msg
			}
		}
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}
