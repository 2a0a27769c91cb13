package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rs/zerolog/log"
)

type contentSearcher interface {
	SearchContent(ctx context.Context, term string) (*database.SearchResults, error)
}

type searchHandler struct {
	responder Responder
	searcher  contentSearcher
}

func newSearchHandler(searcher contentSearcher) searchHandler {
	return searchHandler{
		responder: NewResponder(log.With().Str("handlerName", "searchHandler").Logger()),
		searcher:  searcher,
	}
}

// search matches q against published diaries and blog posts.
// @Summary Search content
// @Description Case-insensitive substring search, at most 10 results of each kind
// @Tags Search
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} database.SearchResults
// @Failure 400 {object} ErrorResponse "Search query required"
// @Failure 500 {object} ErrorResponse "Failed to search content"
// @Router /api/search [get]
func (h searchHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.TrimSpace(r.URL.Query().Get("q"))
		if term == "" {
			h.responder.WriteError(w, errs.NewMissingParamError("Search query required"))
			return
		}

		results, err := h.searcher.SearchContent(r.Context(), term)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to search content"}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, results)
	}
}
