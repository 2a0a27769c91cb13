package database_test

import (
	"context"
	"testing"

	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/database/databasetest"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostRepo_FindAllFilters(t *testing.T) {
	db := databasetest.Open(t)
	repo := db.BlogPostRepo()

	gear := newPost("packing-list", true, 1)
	gear.Category = models.CategoryGear
	gear.Tags = []string{"backpack"}
	musing := newPost("why-travel", true, 2)
	musing.Category = models.CategoryPhilosophy
	musing.Content = "On slow travel and patience"
	draft := newPost("draft", false, 3)
	draft.Category = models.CategoryGear
	addPosts(t, repo, gear, musing, draft)
	ctx := context.Background()

	all, err := repo.FindAll(ctx, database.BlogPostFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"why-travel", "packing-list"}, slugsOfPosts(all))

	byCategory, err := repo.FindAll(ctx, database.BlogPostFilter{Category: models.CategoryGear})
	require.NoError(t, err)
	assert.Equal(t, []string{"packing-list"}, slugsOfPosts(byCategory))

	byContent, err := repo.FindAll(ctx, database.BlogPostFilter{Search: "SLOW TRAVEL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"why-travel"}, slugsOfPosts(byContent))

	byTag, err := repo.FindAll(ctx, database.BlogPostFilter{Tags: []string{"backpack"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"packing-list"}, slugsOfPosts(byTag))
}

func TestBlogPostRepo_FindBySlugHidesDrafts(t *testing.T) {
	db := databasetest.Open(t)
	repo := db.BlogPostRepo()
	addPosts(t, repo, newPost("live", true, 1), newPost("draft", false, 2))
	ctx := context.Background()

	got, err := repo.FindBySlug(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "Post live", got.Title)

	_, err = repo.FindBySlug(ctx, "draft")
	assert.True(t, errs.IsNotFound(err))
}

func TestBlogPostRepo_DuplicateSlug(t *testing.T) {
	db := databasetest.Open(t)
	repo := db.BlogPostRepo()
	addPosts(t, repo, newPost("same", true, 1))

	err := repo.Add(context.Background(), newPost("same", false, 2))
	assert.True(t, errs.IsAlreadyExists(err))
}

func TestBlogPostRepo_DeleteCascadesComments(t *testing.T) {
	db := databasetest.Open(t)
	ctx := context.Background()
	post := newPost("gone", true, 1)
	addPosts(t, db.BlogPostRepo(), post)

	comment := &models.Comment{Name: "Ravi", Message: "Nice", BlogPostID: ptr(post.ID)}
	require.NoError(t, db.CommentRepo().Add(ctx, comment))

	require.NoError(t, db.BlogPostRepo().Delete(ctx, post.ID))

	pending, err := db.CommentRepo().FindPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
