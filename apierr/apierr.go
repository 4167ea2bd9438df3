package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Error is an error that carries the HTTP status and client-facing detail it renders as.
type Error struct {
	Status int
	Detail string
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, detail string, err error) *Error {
	return &Error{Status: status, Detail: detail, Err: err}
}

func NotFound(detail string) *Error {
	return New(http.StatusNotFound, detail, nil)
}

// Conflict is a uniqueness violation. It renders as 400 to stay compatible with existing clients.
func Conflict(detail string) *Error {
	return New(http.StatusBadRequest, detail, nil)
}

func BadRequest(detail string) *Error {
	return New(http.StatusBadRequest, detail, nil)
}

func Unauthorized(detail string) *Error {
	return New(http.StatusUnauthorized, detail, nil)
}

func Forbidden(detail string) *Error {
	return New(http.StatusForbidden, detail, nil)
}

func Validation(detail string, fields map[string]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Detail: detail, Fields: fields}
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Internal server error", err)
}

// FromDB translates a persistence error. conflict and notFound are the details used for
// unique-constraint and missing-row/foreign-key failures; other errors become Internal.
func FromDB(err error, conflict, notFound string) error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(http.StatusBadRequest, conflict, err)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return New(http.StatusNotFound, notFound, err)
	default:
		return Internal(err)
	}
}
