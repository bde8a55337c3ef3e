// Package httpx concentra la escritura de respuestas JSON y el mapeo de errores,
// antes duplicado en cada handler.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/logger"
)

const maxBody = 1 << 20

// ErrorResponse es el cuerpo de error estándar.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse para operaciones sin payload (delete, status).
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce err a status + {"message"}. Los Internal se loguean y no se filtran.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	kind := apperr.KindOf(err)
	msg := apperr.Message(err)

	if kind == apperr.Internal {
		if log != nil {
			log.Error("request failed", map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"err":    err,
			})
		}
		msg = "internal error"
	}

	WriteJSON(w, kind.HTTPStatus(), ErrorResponse{Message: msg})
}

// DecodeJSON decodifica el body en dst; body vacío o mal formado => Invalid.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.New(apperr.Invalid, "request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.Invalid, "request body is required")
		}
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return apperr.Newf(apperr.Invalid, "%s has an invalid type", te.Field)
		}
		return apperr.Wrap(apperr.Invalid, "invalid json", err)
	}
	return nil
}

// SameEmail compara emails sin distinguir mayúsculas ni espacios.
func SameEmail(a, b string) bool {
	a = strings.TrimSpace(a)
	return a != "" && strings.EqualFold(a, strings.TrimSpace(b))
}
