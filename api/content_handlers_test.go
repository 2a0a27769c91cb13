package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogEndpoints(t *testing.T) {
	a := newTestAPI(t)
	a.seedPost("slow-travel", true)
	a.seedPost("unfinished", false)

	rec := a.do(http.MethodGet, "/api/blog?category=reflections", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodeBody[[]models.BlogPost](t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, "slow-travel", posts[0].Slug)

	rec = a.do(http.MethodGet, "/api/blog/unfinished", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Blog post not found"}`, rec.Body.String())

	rec = a.do(http.MethodPost, "/api/blog", map[string]any{
		"title":         "Packing light",
		"slug":          "packing-light",
		"excerpt":       "One bag",
		"content":       "Everything fits.",
		"featuredImage": "https://img.example.com/bag.jpg",
		"category":      "gear",
		"tags":          []string{"packing"},
		"readTime":      3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.BlogPost](t, rec)
	assert.False(t, created.Published)

	rec = a.do(http.MethodPost, "/api/blog", map[string]any{"title": "x", "slug": "Not A Slug"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "content")
}

func TestComments_HiddenUntilApproved(t *testing.T) {
	a := newTestAPI(t)
	diary := a.seedDiary("hampi", true)

	rec := a.do(http.MethodPost, "/api/comments", map[string]any{
		"name":    "Kiran",
		"email":   "Kiran@Example.com",
		"message": "Loved the boulders",
		"diaryId": diary.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.Comment](t, rec)
	assert.False(t, created.Approved)
	require.NotNil(t, created.Email)
	assert.Equal(t, "kiran@example.com", *created.Email)

	target := "/api/comments/diary/" + itoa(diary.ID)
	rec = a.do(http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	require.NoError(t, a.db.CommentRepo().Approve(context.Background(), created.ID))

	rec = a.do(http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decodeBody[[]models.Comment](t, rec)
	require.Len(t, comments, 1)
	assert.Equal(t, "Loved the boulders", comments[0].Message)
}

func TestComments_Validation(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodGet, "/api/comments/photo/1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/api/comments/blog/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/api/comments", map[string]any{"name": "N", "message": "M"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "diaryId", resp.Errors[0].Field)

	rec = a.do(http.MethodPost, "/api/comments", map[string]any{"name": "N", "message": "M", "blogPostId": 404})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp = decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "The diary or blog post being commented on does not exist", resp.Message)
}

func TestNewsletter_DuplicateEmail(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodPost, "/api/newsletter", map[string]any{"email": "reader@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sub := decodeBody[models.Newsletter](t, rec)
	assert.True(t, sub.Subscribed)

	rec = a.do(http.MethodPost, "/api/newsletter", map[string]any{"email": " Reader@Example.com "})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Email already subscribed"}`, rec.Body.String())

	n, err := a.db.NewsletterRepo().Count(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rec = a.do(http.MethodPost, "/api/newsletter", map[string]any{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type recordingNotifier struct {
	contacts []*models.Contact
}

func (n *recordingNotifier) NotifyContact(_ context.Context, c *models.Contact) error {
	n.contacts = append(n.contacts, c)
	return nil
}

func TestContact(t *testing.T) {
	notifier := &recordingNotifier{}
	a := newTestAPI(t, WithContactNotifier(notifier))

	rec := a.do(http.MethodPost, "/api/contact", map[string]any{
		"name":     "Ana",
		"email":    "ana@example.com",
		"subject":  "Collaboration",
		"message":  "Hello there",
		"category": "collaboration",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	contact := decodeBody[models.Contact](t, rec)
	assert.NotZero(t, contact.ID)
	assert.False(t, contact.Read)
	require.Len(t, notifier.contacts, 1)
	assert.Equal(t, "Collaboration", notifier.contacts[0].Subject)

	rec = a.do(http.MethodPost, "/api/contact", map[string]any{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, notifier.contacts, 1)
}

func TestGallery(t *testing.T) {
	a := newTestAPI(t)
	diary := a.seedDiary("hampi", true)

	rec := a.do(http.MethodPost, "/api/gallery", map[string]any{
		"title":       "Virupaksha",
		"description": "Temple at dusk",
		"imageUrl":    "https://img.example.com/v.jpg",
		"location":    "Hampi",
		"diaryId":     diary.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]any](t, rec)
	assert.NotZero(t, created["id"])
	assert.NotEmpty(t, created["createdAt"])

	rec = a.do(http.MethodGet, "/api/gallery?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	images := decodeBody[[]models.GalleryImage](t, rec)
	require.Len(t, images, 1)
	assert.Equal(t, "Virupaksha", images[0].Title)

	rec = a.do(http.MethodPost, "/api/gallery", map[string]any{"title": "No url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch(t *testing.T) {
	a := newTestAPI(t)
	a.seedDiary("hampi", true)
	a.seedPost("slow-travel", true)

	rec := a.do(http.MethodGet, "/api/search", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Search query required"}`, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/search?q=sleeper+bus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	results := decodeBody[database.SearchResults](t, rec)
	require.Len(t, results.Diaries, 1)
	assert.Equal(t, "hampi", results.Diaries[0].Slug)
	assert.Empty(t, results.BlogPosts)
	assert.True(t, strings.Contains(rec.Body.String(), `"blogPosts":[]`))
}
