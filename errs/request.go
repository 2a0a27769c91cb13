package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrValidation           = errors.New("invalid data")
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMaxBodySizeExceeded  = errors.New("max body size exceeded")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// FieldError describes one failed field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// FieldErrors accumulates validation failures in the order they are found.
type FieldErrors []FieldError

func (f *FieldErrors) Add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

func (f *FieldErrors) Required(field string) {
	f.Add(field, "Required")
}

func (f FieldErrors) Has(field string) bool {
	for _, e := range f {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil when nothing failed, otherwise a 400 validation error.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationError(f)
}

func NewValidationError(fields []FieldError) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        errors.New("Invalid data"),
		kind:       ErrValidation,
		Errors:     fields,
	}
}

func NewMissingParamError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        errors.New(message),
		kind:       ErrValidation,
	}
}

// Request & Input-Validation Error Constructors
func NewMalformedPayloadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        errors.New("Malformed request body"),
		kind:       ErrMalformedPayload,
		Cause:      cause,
	}
}

func NewMaxBodySizeExceededError(maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        fmt.Errorf("Request body exceeds the maximum allowed size of %d bytes", maxSize),
		kind:       ErrMaxBodySizeExceeded,
	}
}

func NewUnsupportedMediaTypeError(contentType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnsupportedMediaType,
		err:        fmt.Errorf("Unsupported media type: %s", contentType),
		kind:       ErrUnsupportedMediaType,
	}
}

// Request & Input-Validation Error Type Checkers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsMaxBodySizeExceededError(err error) bool {
	return errors.Is(err, ErrMaxBodySizeExceeded)
}
