package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          pinger
	startupTime time.Time
}

func newHealthHandler(db pinger, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{NewResponder(logger), logger, db, startupTime}
}

type healthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}

// health reports uptime and whether the database answers a ping.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse "Database unreachable"
// @Router /api/health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
			Database: "ok",
		}
		status := http.StatusOK
		if err := h.db.Ping(ctx); err != nil {
			unavailable := errs.NewServiceUnavailableError("Database unreachable", err)
			h.logger.Error().Str("error", unavailable.GetFullError()).Msg("database ping failed")
			resp.Status = "degraded"
			resp.Database = "unreachable"
			status = unavailable.StatusCode
		}

		h.responder.WriteJSON(w, status, resp)
	}
}
