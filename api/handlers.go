package api

import (
	"github.com/rpupo63/travel-blog-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, rt router) *routeHandlers {
	handlers := &routeHandlers{
		diaryHandler:      newDiaryHandler(database.DiaryRepo()),
		blogPostHandler:   newBlogPostHandler(database.BlogPostRepo()),
		commentHandler:    newCommentHandler(database.CommentRepo()),
		newsletterHandler: newNewsletterHandler(database.NewsletterRepo()),
		contactHandler:    newContactHandler(database.ContactRepo(), rt.notifier),
		galleryHandler:    newGalleryHandler(database.GalleryImageRepo()),
		searchHandler:     newSearchHandler(database.SearchRepo()),
		healthHandler:     newHealthHandler(database, rt.startupTime),
		feedHandler:       newFeedHandler(rt.site, database.DiaryRepo(), database.BlogPostRepo()),
	}
	if rt.uploader != nil {
		handlers.uploadHandler = newUploadHandler(rt.uploader)
	}
	return handlers
}
