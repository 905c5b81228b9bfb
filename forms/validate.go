package forms

import (
	goerrors "errors"
	"maps"
	"slices"
	"strings"

	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a json field name to its localized message.
type FieldErrors map[string]string

func (fe FieldErrors) Fields() []string {
	return slices.Sorted(maps.Keys(fe))
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Unwrap().Error()
}

func (e *ValidationError) Unwrap() error {
	return errors.ValidationFailedError.New(strings.Join(e.Fields.Fields(), ", "))
}

type normalizer interface {
	normalize()
}

// fieldMessages picks the message for a failed rule, keyed by "field.tag".
var fieldMessages = map[string]string{
	"email.required":       locale.MsgEmailRequired,
	"email.email":          locale.MsgInvalidEmail,
	"password.required":    locale.MsgPasswordRequired,
	"provider.required":    locale.MsgProviderRequired,
	"title.required":       locale.MsgTitleRequired,
	"title.min":            locale.MsgCategoryNameTooShort,
	"image.required":       locale.MsgImageRequired,
	"description.required": locale.MsgDescriptionRequired,
	"url.required":         locale.MsgURLRequired,
	"url.httpurl":          locale.MsgURLInvalid,
	"country.required":     locale.MsgCountryRequired,
	"name.required":        locale.MsgNameRequired,
	"price.gt":             locale.MsgPriceInvalid,
	"billingCycle.oneof":   locale.MsgBillingCycleInvalid,
}

// Validate normalizes form (a pointer to one of the form types) and checks it.
// It returns a *ValidationError with one localized message per invalid field.
func Validate(form any, l locale.Locale, translator *locale.Translator) error {

	if n, ok := form.(normalizer); ok {
		n.normalize()
	}

	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !goerrors.As(err, &validationErrors) {
		return err
	}

	fields := FieldErrors{}
	for _, fieldErr := range validationErrors {

		field := fieldErr.Field()
		if _, exists := fields[field]; exists {
			continue
		}

		key, ok := fieldMessages[field+"."+fieldErr.Tag()]
		if !ok {
			fields[field] = translator.Text(l, locale.MsgFieldInvalid, field)
			continue
		}

		fields[field] = translator.Text(l, key)
	}

	return &ValidationError{Fields: fields}
}

// AsValidationError extracts the field messages of a failed validation.
func AsValidationError(err error) (FieldErrors, bool) {

	var validationErr *ValidationError
	if !goerrors.As(err, &validationErr) {
		return nil, false
	}

	return validationErr.Fields, true
}
