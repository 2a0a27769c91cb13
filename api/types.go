package api

import "github.com/rpupo63/travel-blog-backend/errs"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	diaryHandler      diaryHandler
	blogPostHandler   blogPostHandler
	commentHandler    commentHandler
	newsletterHandler newsletterHandler
	contactHandler    contactHandler
	galleryHandler    galleryHandler
	searchHandler     searchHandler
	healthHandler     healthHandler
	feedHandler       feedHandler
	uploadHandler     *uploadHandler // nil when no media store is configured
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}
