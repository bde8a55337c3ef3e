package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind clasifica errores de negocio; cada kind mapea a un status HTTP.
type Kind int

const (
	Internal Kind = iota
	Invalid
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	Unavailable
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Unavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// HTTPStatus devuelve el status HTTP del kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case Invalid:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error es el error que cruza el límite de un componente.
// Msg es seguro para mostrar al cliente; Err (opcional) queda solo para logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite comparar contra sentinels del mismo kind+msg aunque vengan envueltos con causa.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap adjunta la causa a un error tipado. Si err ya es *Error se devuelve tal cual.
func Wrap(kind Kind, msg string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf devuelve el kind de err; cualquier error no tipado es Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Message devuelve el mensaje público. Para errores no tipados no filtra detalles.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Kind == Internal && ae.Msg == "" {
			return "internal error"
		}
		return ae.Msg
	}
	return "internal error"
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
