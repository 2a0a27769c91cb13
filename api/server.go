package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/travel-blog-backend/config"
	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, settings config.ServerSettings, opts ...Option) Server {
	address := fmt.Sprintf("0.0.0.0:%s", settings.Port)

	startupTime := time.Now()
	opts = append([]Option{withStartupTime(startupTime), WithOrigins(settings.AcceptedOrigins)}, opts...)

	server := &http.Server{
		Addr:              address,
		Handler:           newRouter(database, opts...),
		ReadTimeout:       settings.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      settings.WriteTimeout,
		IdleTimeout:       settings.IdleTimeout,
	}

	return Server{server, startupTime}
}

// Option configures optional parts of the router.
type Option func(*router)

type router struct {
	logger        zerolog.Logger
	startupTime   time.Time
	origins       []string
	site          SiteInfo
	uploader      imageUploader
	localMediaDir string
	notifier      contactNotifier
}

func withStartupTime(startupTime time.Time) Option {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// WithOrigins sets the origins allowed by CORS.
func WithOrigins(origins []string) Option {
	return func(r *router) {
		r.origins = origins
	}
}

// WithSite sets the front end the feeds link to.
func WithSite(site SiteInfo) Option {
	return func(r *router) {
		r.site = site
	}
}

// WithUploads enables POST /api/uploads. A non-empty localDir is also served
// under /uploads/.
func WithUploads(uploader imageUploader, localDir string) Option {
	return func(r *router) {
		r.uploader = uploader
		r.localMediaDir = localDir
	}
}

// WithContactNotifier emails the owner for every contact message.
func WithContactNotifier(notifier contactNotifier) Option {
	return func(r *router) {
		r.notifier = notifier
	}
}

func newRouter(database database.Database, opts ...Option) *chi.Mux {
	rt := router{
		logger:      log.With().Str("handlerName", "router").Logger(),
		startupTime: time.Now(),
	}
	for _, opt := range opts {
		opt(&rt)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(withRequestID)
	chiRouter.Use(logRequests)
	chiRouter.Use(recoverPanics)
	if len(rt.origins) > 0 {
		chiRouter.Use(corsMiddleware(rt.origins))
	}

	handlers := initializeHandlers(database, rt)
	setupRoutes(chiRouter, handlers, rt)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
