package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/travel-blog-backend/errs"
)

// setupRoutes mounts the public JSON API and the feeds.
func setupRoutes(r chi.Router, handlers *routeHandlers, rt router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.healthHandler.health())

		r.Get("/diaries", handlers.diaryHandler.listDiaries())
		r.Get("/diaries/{slug}", handlers.diaryHandler.getDiary())
		r.Post("/diaries", handlers.diaryHandler.createDiary())

		r.Get("/blog", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog/{slug}", handlers.blogPostHandler.getBlogPost())
		r.Post("/blog", handlers.blogPostHandler.createBlogPost())

		r.Get("/comments/{type}/{id}", handlers.commentHandler.listComments())
		r.Post("/comments", handlers.commentHandler.createComment())

		r.Post("/newsletter", handlers.newsletterHandler.subscribe())
		r.Post("/contact", handlers.contactHandler.sendMessage())

		r.Get("/gallery", handlers.galleryHandler.listImages())
		r.Post("/gallery", handlers.galleryHandler.createImage())

		r.Get("/search", handlers.searchHandler.search())

		if handlers.uploadHandler != nil {
			r.Post("/uploads", handlers.uploadHandler.uploadImage())
		}

		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			NewResponder(rt.logger).WriteError(w, errs.NewNotFoundError("Not found"))
		})
	})

	r.Get("/rss.xml", handlers.feedHandler.rss())
	r.Get("/sitemap.xml", handlers.feedHandler.sitemap())

	if rt.localMediaDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(rt.localMediaDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}
}
