package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/booksclient/internal/apperrors"
)

// newValidator builds a validator whose field names come from json tags, so
// local validation failures key the same field names the API uses.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs validation and converts failures into the same
// field-keyed error shape the API returns, so callers handle local and
// remote validation identically.
func checkStruct(v *validator.Validate, obj any) error {
	err := v.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = validationMessage(fe)
	}
	return apperrors.NewValidationError(fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + fe.Field() + " field is required."
	case "email":
		return "The " + fe.Field() + " field must be a valid email address."
	case "min":
		return "The " + fe.Field() + " field is too short."
	}
	return "The " + fe.Field() + " field is invalid."
}
