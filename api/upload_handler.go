package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type imageUploader interface {
	Upload(ctx context.Context, src io.Reader, originalName string) (*services.Upload, error)
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  imageUploader
}

func newUploadHandler(uploader imageUploader) *uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()
	return &uploadHandler{NewResponder(logger), logger, uploader}
}

// uploadImage accepts a multipart form with an "image" file and returns the
// public URL of the processed JPEG.
// @Summary Upload image
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "JPEG, PNG or GIF"
// @Success 201 {object} services.Upload
// @Failure 400 {object} ErrorResponse "Missing or unreadable image"
// @Failure 413 {object} ErrorResponse "Image too large"
// @Failure 500 {object} ErrorResponse "Failed to upload image"
// @Router /api/uploads [post]
func (h *uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseUploadForm(w, r); err != nil {
			if errs.IsMaxBodySizeExceededError(err) {
				h.logger.Warn().Int64("contentLength", r.ContentLength).Msg("upload rejected as too large")
			}
			h.responder.WriteError(w, err)
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError([]errs.FieldError{{Field: "image", Message: "Required"}}))
			return
		}
		defer file.Close()

		if header.Size > services.MaxUploadBytes {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(services.MaxUploadBytes))
			return
		}

		upload, err := h.uploader.Upload(r.Context(), file, header.Filename)
		if err != nil {
			if errors.Is(err, services.ErrInvalidImage) {
				h.responder.WriteError(w, errs.NewValidationError([]errs.FieldError{{Field: "image", Message: "Not a supported image (jpeg, png or gif)"}}))
				return
			}
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to upload image", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, upload)
	}
}

// parseUploadForm reads the multipart body, allowing some room for the form
// envelope on top of the image itself.
func parseUploadForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewMaxBodySizeExceededError(services.MaxUploadBytes)
		}
		return errs.NewMalformedPayloadError(err)
	}
	return nil
}
