package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentStore interface {
	FindForOwner(ctx context.Context, kind models.OwnerKind, ownerID uint) ([]*models.Comment, error)
	Add(ctx context.Context, comment *models.Comment) error
}

type commentHandler struct {
	responder Responder
	logger    zerolog.Logger
	comments  commentStore
}

func newCommentHandler(comments commentStore) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		comments:  comments,
	}
}

// listComments returns the approved comments of a diary or blog post.
// @Summary List comments
// @Description Returns approved comments for one diary or blog post, newest first
// @Tags Comments
// @Produce json
// @Param type path string true "Owner kind" Enums(diary, blog)
// @Param id path int true "Owner id"
// @Success 200 {array} models.Comment
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 500 {object} ErrorResponse "Failed to fetch comments"
// @Router /api/comments/{type}/{id} [get]
func (h commentHandler) listComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fe errs.FieldErrors
		kind, ok := models.ParseOwnerKind(chi.URLParam(r, "type"))
		if !ok {
			fe.Add("type", "Must be diary or blog")
		}
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			fe.Add("id", "Must be a positive integer")
		}
		if err := fe.Err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.comments.FindForOwner(r.Context(), kind, uint(id))
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to fetch comments"}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, comments)
	}
}

// createComment stores a comment for moderation. It is not visible until approved.
// @Summary Create comment
// @Description Stores an unapproved comment on a diary or blog post
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment body models.CommentInput true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} ErrorResponse "Invalid data or unknown diary/blog post"
// @Failure 500 {object} ErrorResponse "Failed to create comment"
// @Router /api/comments [post]
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.CommentInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment := input.ToComment()
		if err := h.comments.Add(r.Context(), &comment); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{
				Failure:      "Failed to create comment",
				BadReference: "The diary or blog post being commented on does not exist",
			}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, comment)
	}
}
