package helpers

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	httperrors "github.com/dropDatabas3/authrelay/internal/http/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("not_empty", validateNotEmpty)
	})
	return validate
}

// not_empty: como required pero rechaza strings sólo con espacios.
func validateNotEmpty(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate corre las reglas `validate` del struct y, si falla, devuelve
// ErrValidationFailed con el mensaje del primer campo inválido.
//
// Los mensajes salen del tag `msg` del campo, con formato "regla:mensaje|regla:mensaje":
//
//	Email string `validate:"not_empty,email" msg:"not_empty:Email is required|email:Email must be valid"`
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return httperrors.ErrValidationFailed.WithCause(err)
	}

	fe := verrs[0]
	return httperrors.ErrValidationFailed.WithMessage(fieldMessage(v, fe)).WithCause(err)
}

func fieldMessage(v any, fe validator.FieldError) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if msg, ok := lookupMsg(sf.Tag.Get("msg"), fe.Tag()); ok {
				return msg
			}
		}
	}
	return defaultMessage(fe)
}

func lookupMsg(tag, rule string) (string, bool) {
	if tag == "" {
		return "", false
	}
	for _, part := range strings.Split(tag, "|") {
		k, msg, ok := strings.Cut(part, ":")
		if ok && strings.TrimSpace(k) == rule {
			return strings.TrimSpace(msg), true
		}
	}
	return "", false
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "not_empty":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	default:
		return fe.Field() + " is invalid"
	}
}
