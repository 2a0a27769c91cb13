package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type diaryStore interface {
	FindAll(ctx context.Context, filter database.DiaryFilter) ([]*models.Diary, error)
	FindBySlug(ctx context.Context, slug string) (*models.Diary, error)
	Add(ctx context.Context, diary *models.Diary) error
}

type diaryHandler struct {
	responder Responder
	logger    zerolog.Logger
	diaries   diaryStore
}

func newDiaryHandler(diaries diaryStore) diaryHandler {
	logger := log.With().Str("handlerName", "diaryHandler").Logger()

	return diaryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		diaries:   diaries,
	}
}

// listDiaries returns published diaries
// @Summary List diaries
// @Tags Diaries
// @Produce json
// @Param region query string false "Exact region"
// @Param tags query string false "Comma separated tags, all must match"
// @Param search query string false "Substring of title, excerpt or location"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.Diary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/diaries [get]
func (h diaryHandler) listDiaries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		diaries, err := h.diaries.FindAll(r.Context(), database.DiaryFilter{
			Region: q.Get("region"),
			Search: q.Get("search"),
			Tags:   parseTags(r),
			Page:   page,
		})
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to fetch diaries"}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, diaries)
	}
}

// getDiary returns one published diary by slug
// @Summary Get diary
// @Tags Diaries
// @Produce json
// @Param slug path string true "Diary slug"
// @Success 200 {object} models.Diary
// @Failure 404 {object} ErrorResponse "Diary not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/diaries/{slug} [get]
func (h diaryHandler) getDiary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		diary, err := h.diaries.FindBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{
				Failure:  "Failed to fetch diary",
				NotFound: "Diary not found",
			}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, diary)
	}
}

// createDiary stores a new diary
// @Summary Create diary
// @Tags Diaries
// @Accept json
// @Produce json
// @Param diary body models.DiaryInput true "Diary"
// @Success 201 {object} models.Diary
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "Slug already used"
// @Failure 500 {object} ErrorResponse
// @Router /api/diaries [post]
func (h diaryHandler) createDiary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.DiaryInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		diary := input.ToDiary()
		if err := h.diaries.Add(r.Context(), &diary); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{
				Failure:  "Failed to create diary",
				Conflict: "A diary with this slug already exists",
			}, err))
			return
		}

		h.logger.Info().Uint("diaryId", diary.ID).Str("slug", diary.Slug).Msg("diary created")
		h.responder.WriteJSON(w, http.StatusCreated, diary)
	}
}
