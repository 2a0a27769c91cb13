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

type blogPostStore interface {
	FindAll(ctx context.Context, filter database.BlogPostFilter) ([]*models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Add(ctx context.Context, post *models.BlogPost) error
}

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     blogPostStore
}

func newBlogPostHandler(posts blogPostStore) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// getAllBlogPosts lists published blog posts
// @Summary List blog posts
// @Tags Blog Posts
// @Produce json
// @Param category query string false "Exact category"
// @Param tags query string false "Comma separated tags, all must match"
// @Param search query string false "Substring of title, excerpt or content"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.BlogPost
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/blog [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		posts, err := h.posts.FindAll(r.Context(), database.BlogPostFilter{
			Category: q.Get("category"),
			Search:   q.Get("search"),
			Tags:     parseTags(r),
			Page:     page,
		})
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to fetch blog posts"}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, posts)
	}
}

// getBlogPost retrieves a published blog post by slug
// @Summary Get blog post
// @Tags Blog Posts
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} ErrorResponse "Blog post not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/blog/{slug} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.posts.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{
				Failure:  "Failed to fetch blog post",
				NotFound: "Blog post not found",
			}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, post)
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPost body models.BlogPostInput true "Blog post"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "Slug already used"
// @Failure 500 {object} ErrorResponse
// @Router /api/blog [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.BlogPostInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := input.ToBlogPost()
		if err := h.posts.Add(r.Context(), &post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{
				Failure:  "Failed to create blog post",
				Conflict: "A blog post with this slug already exists",
			}, err))
			return
		}

		h.logger.Info().Uint("blogPostId", post.ID).Str("slug", post.Slug).Msg("blog post created")
		h.responder.WriteJSON(w, http.StatusCreated, post)
	}
}
