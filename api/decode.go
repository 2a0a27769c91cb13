package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/errs"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads exactly one JSON object into dst. Unknown fields and values
// of the wrong type become field errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return errs.NewUnsupportedMediaTypeError(ct)
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errs.NewMalformedPayloadError(errors.New("body must contain a single JSON object"))
	}
	return nil
}

func decodeError(err error) error {
	var maxErr *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &maxErr):
		return errs.NewMaxBodySizeExceededError(maxErr.Limit)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return errs.NewMalformedPayloadError(err)
		}
		return errs.NewValidationError([]errs.FieldError{{
			Field:   field,
			Message: fmt.Sprintf("Expected %s, got %s", jsonKind(typeErr), typeErr.Value),
		}})
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return errs.NewValidationError([]errs.FieldError{{Field: field, Message: "Unknown field"}})
	default:
		return errs.NewMalformedPayloadError(err)
	}
}

func jsonKind(typeErr *json.UnmarshalTypeError) string {
	if typeErr.Type == nil {
		return "a different type"
	}
	switch k := typeErr.Type.Kind().String(); {
	case strings.HasPrefix(k, "int"), strings.HasPrefix(k, "uint"), strings.HasPrefix(k, "float"):
		return "number"
	case k == "slice":
		return "array"
	case k == "bool":
		return "boolean"
	default:
		return k
	}
}

// parsePage reads limit and offset. Missing values are left at zero so the
// repository picks its default.
func parsePage(r *http.Request) (database.Page, error) {
	var page database.Page
	var fe errs.FieldErrors
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fe.Add("limit", "Must be a non-negative integer")
		}
		page.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fe.Add("offset", "Must be a non-negative integer")
		}
		page.Offset = n
	}
	if err := fe.Err(); err != nil {
		return database.Page{}, err
	}
	return page, nil
}

// parseTags splits the comma separated tags parameter.
func parseTags(r *http.Request) []string {
	raw := r.URL.Query().Get("tags")
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
