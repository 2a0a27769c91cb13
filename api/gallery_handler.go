package api

import (
	"context"
	"net/http"

	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type galleryStore interface {
	FindAll(ctx context.Context, page database.Page) ([]*models.GalleryImage, error)
	Add(ctx context.Context, image *models.GalleryImage) error
}

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    galleryStore
}

func newGalleryHandler(images galleryStore) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
	}
}

// listImages returns gallery images newest first (default 20 per page).
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.GalleryImage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to fetch gallery images"
// @Router /api/gallery [get]
func (h galleryHandler) listImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		images, err := h.images.FindAll(r.Context(), page)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to fetch gallery images"}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, images)
	}
}

// createImage adds a photo to the gallery, optionally linked to a diary.
// @Summary Create gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param image body models.GalleryImageInput true "Gallery image"
// @Success 201 {object} models.GalleryImage
// @Failure 400 {object} ErrorResponse "Invalid data or unknown diary"
// @Failure 500 {object} ErrorResponse "Failed to create gallery image"
// @Router /api/gallery [post]
func (h galleryHandler) createImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.GalleryImageInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		image := input.ToGalleryImage()
		if err := h.images.Add(r.Context(), &image); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{
				Failure:      "Failed to create gallery image",
				BadReference: "The referenced diary does not exist",
			}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, image)
	}
}
