package heidelpay

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"

	"github.com/heidelpay/heidelpay-go/input"
)

var (
	birthDateLayouts = []string{"2006-01-02", "02.01.2006"}
	validate         = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	mustRegister(v, "card_number", stringRule(func(s string) bool {
		number := input.UngroupString(s, " ")
		return input.CardTypeFromNumber(number).Validate(number) == input.ValidChecksum
	}))
	mustRegister(v, "iban_checksum", stringRule(func(s string) bool {
		return input.ValidateIBAN(s) == input.ValidChecksum
	}))
	mustRegister(v, "expiry_date", stringRule(func(s string) bool {
		return input.NewCardExpiryInput(s).Valid()
	}))
	mustRegister(v, "birth_date", stringRule(func(s string) bool {
		for _, layout := range birthDateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	}))
	mustRegister(v, "email_format", stringRule(func(s string) bool {
		return checkmail.ValidateFormat(s) == nil
	}))

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func stringRule(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return check(value)
	}
}

// validateStruct runs the struct tags of v and reports the first violation
// using JSON field names.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	first := validationErrs[0]
	return fmt.Errorf("%s %s", jsonPath(first), validationMessage(first))
}

func jsonPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return fe.Field()
	}
	return path
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "numeric":
		return "must contain digits only"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "iso3166_1_alpha2":
		return "must be an ISO 3166-1 alpha-2 country code"
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "card_number":
		return "must be a valid card number"
	case "iban_checksum":
		return "must be a valid IBAN"
	case "expiry_date":
		return "must be a future expiry date in MM/YY format"
	case "birth_date":
		return "must be a date formatted yyyy-mm-dd or dd.mm.yyyy"
	case "email_format":
		return "must be a valid e-mail address"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
