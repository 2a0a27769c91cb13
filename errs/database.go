package errs

import (
	"errors"
	"net/http"
)

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForeignKeyConstraint = errors.New("foreign key constraint violation")
	ErrDatabaseQuery        = errors.New("database query failed")
)

// DatabaseMessages are the client-facing texts NewDatabaseError picks from.
// Empty entries fall back to Failure.
type DatabaseMessages struct {
	Failure      string // generic 500 text, e.g. "Failed to create diary"
	NotFound     string
	Conflict     string
	BadReference string
}

// NewDatabaseError classifies a repository error into the response the client sees.
// The cause is kept for logging only.
func NewDatabaseError(msgs DatabaseMessages, cause error) *ApiErr {
	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	pick := func(msg string) string {
		if msg == "" {
			return msgs.Failure
		}
		return msg
	}

	switch {
	case errors.Is(cause, ErrNotFound):
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        errors.New(pick(msgs.NotFound)),
			kind:       ErrNotFound,
			Cause:      cause,
		}
	case errors.Is(cause, ErrAlreadyExists):
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        errors.New(pick(msgs.Conflict)),
			kind:       ErrConflict,
			Cause:      cause,
		}
	case errors.Is(cause, ErrForeignKeyConstraint):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        errors.New(pick(msgs.BadReference)),
			kind:       ErrForeignKeyConstraint,
			Cause:      cause,
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(msgs.Failure),
		kind:       ErrDatabaseQuery,
		Cause:      cause,
	}
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}
