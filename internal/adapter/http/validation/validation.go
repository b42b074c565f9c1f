package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/pkg/apierrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// TEXT columns are limited in bytes, not characters.
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// check runs the struct rules and converts failures into a
// *domain.ValidationError keyed by JSON field name.
func check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &domain.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = messageForTag(fe.Tag())
	}
	return verr
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return apierrors.MsgFieldRequired
	case "max", "maxbytes":
		return apierrors.MsgFieldTooLong
	case "datetime":
		return apierrors.MsgFieldInvalidDate
	}
	return apierrors.MsgFieldInvalid
}

// normalizeOptional trims s and maps blank values to nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	value := strings.TrimSpace(*s)
	if value == "" {
		return nil
	}
	return &value
}
