package api

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON sets the content type before the status so it is not lost.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteXML writes an XML document with its declaration.
func (r Responder) WriteXML(w http.ResponseWriter, contentType string, data any) {
	body, err := xml.MarshalIndent(data, "", "  ")
	if err != nil {
		r.WriteError(w, errs.NewInternalErrorWithCause("Failed to render feed", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
		return
	}
	if _, err := w.Write(body); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError writes err as {message, errors?}. Causes are logged and never
// sent to the client.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Int("status", apiErr.StatusCode).Str("error", apiErr.GetFullError()).Msg("request failed")
	} else if apiErr.Cause != nil {
		r.logger.Debug().Int("status", apiErr.StatusCode).Str("error", apiErr.GetFullError()).Msg("request rejected")
	}

	r.WriteJSON(w, apiErr.StatusCode, ErrorResponse{
		Message: apiErr.Message(),
		Errors:  apiErr.Errors,
	})
}
