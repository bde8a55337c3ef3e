// Package validate envuelve go-playground/validator con nombres de campo JSON
// y traduce el primer error a un apperr.Invalid legible.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"petify-api/internal/platform/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return v
}

var messages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email",
	"gt":       "%s must be greater than %s",
	"gte":      "%s must be greater than or equal to %s",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
	"oneof":    "%s must be one of [%s]",
}

// Struct valida s (struct o puntero a struct). Devuelve nil o un *apperr.Error de tipo Invalid
// con el primer campo que falla, en orden de declaración.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Wrap(apperr.Invalid, "invalid input", err)
	}
	return apperr.New(apperr.Invalid, message(verrs[0]))
}

// Fields devuelve todos los errores como campo -> mensaje (útil para respuestas detalladas).
func Fields(s any) map[string]string {
	out := map[string]string{}
	err := instance().Struct(s)
	var verrs validator.ValidationErrors
	if err == nil || !errors.As(err, &verrs) {
		return out
	}
	for _, e := range verrs {
		out[e.Field()] = message(e)
	}
	return out
}

func message(e validator.FieldError) string {
	tmpl, ok := messages[e.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", e.Field())
	}
	if strings.Count(tmpl, "%s") == 2 {
		return fmt.Sprintf(tmpl, e.Field(), e.Param())
	}
	return fmt.Sprintf(tmpl, e.Field())
}
