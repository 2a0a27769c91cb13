package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var diaryMessages = DatabaseMessages{
	Failure:      "Failed to create diary",
	NotFound:     "Diary not found",
	Conflict:     "A diary with this slug already exists",
	BadReference: "",
}

func TestNewDatabaseError(t *testing.T) {
	cases := []struct {
		name    string
		cause   error
		status  int
		message string
	}{
		{"not found", fmt.Errorf("find diary: %w", ErrNotFound), http.StatusNotFound, "Diary not found"},
		{"duplicate", fmt.Errorf("add diary: %w", ErrAlreadyExists), http.StatusConflict, "A diary with this slug already exists"},
		{"bad reference falls back", fmt.Errorf("add: %w", ErrForeignKeyConstraint), http.StatusBadRequest, "Failed to create diary"},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError, "Failed to create diary"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError(diaryMessages, tc.cause)
			assert.Equal(t, tc.status, err.StatusCode)
			assert.Equal(t, tc.message, err.Message())
			assert.ErrorIs(t, err.Cause, tc.cause)
			assert.Contains(t, err.GetFullError(), tc.cause.Error())
		})
	}
}

func TestNewDatabaseError_PassesApiErrThrough(t *testing.T) {
	original := NewMissingParamError("Search query required")
	assert.Same(t, original, NewDatabaseError(diaryMessages, original))
}

func TestSentinelsMatch(t *testing.T) {
	assert.ErrorIs(t, NewDatabaseError(diaryMessages, ErrAlreadyExists), ErrConflict)
	assert.True(t, IsNotFound(NewNotFoundError("Blog post not found")))
	assert.True(t, IsValidationError(NewMissingParamError("Search query required")))
	assert.True(t, IsMaxBodySizeExceededError(NewMaxBodySizeExceededError(1024)))
	assert.ErrorIs(t, NewInternalError("Internal server error"), ErrInternal)
}

func TestNewServiceUnavailableError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewServiceUnavailableError("Database unreachable", cause)

	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, "Database unreachable -> dial tcp: connection refused", err.GetFullError())
}

func TestFieldErrors(t *testing.T) {
	var fe FieldErrors
	assert.NoError(t, fe.Err())

	fe.Required("title")
	fe.Add("slug", "Invalid")
	assert.True(t, fe.Has("slug"))
	assert.False(t, fe.Has("tags"))
	assert.Equal(t, "title: Required", fe[0].String())

	err := fe.Err()
	var apiErr *ApiErr
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid data", apiErr.Message())
	assert.Len(t, apiErr.Errors, 2)
}
