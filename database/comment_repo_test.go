package database_test

import (
	"context"
	"testing"

	"github.com/rpupo63/travel-blog-backend/database/databasetest"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepo_NewCommentsWaitForApproval(t *testing.T) {
	db := databasetest.Open(t)
	ctx := context.Background()
	diary := newDiary("hampi", true, 1)
	addDiaries(t, db.DiaryRepo(), diary)
	repo := db.CommentRepo()

	comment := &models.Comment{Name: "Meera", Message: "Beautiful", DiaryID: ptr(diary.ID), Approved: true}
	require.NoError(t, repo.Add(ctx, comment))
	assert.NotZero(t, comment.ID)
	assert.False(t, comment.Approved)

	visible, err := repo.FindForOwner(ctx, models.OwnerDiary, diary.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)

	require.NoError(t, repo.Approve(ctx, comment.ID))

	visible, err = repo.FindForOwner(ctx, models.OwnerDiary, diary.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, comment.ID, visible[0].ID)
	assert.True(t, visible[0].Approved)
}

func TestCommentRepo_FindForOwnerMatchesKind(t *testing.T) {
	db := databasetest.Open(t)
	ctx := context.Background()
	diary := newDiary("coorg", true, 1)
	addDiaries(t, db.DiaryRepo(), diary)
	post := newPost("coorg-coffee", true, 1)
	addPosts(t, db.BlogPostRepo(), post)
	repo := db.CommentRepo()

	onDiary := &models.Comment{Name: "A", Message: "diary", DiaryID: ptr(diary.ID)}
	onPost := &models.Comment{Name: "B", Message: "post", BlogPostID: ptr(post.ID)}
	require.NoError(t, repo.Add(ctx, onDiary))
	require.NoError(t, repo.Add(ctx, onPost))
	require.NoError(t, repo.Approve(ctx, onDiary.ID))
	require.NoError(t, repo.Approve(ctx, onPost.ID))

	blogComments, err := repo.FindForOwner(ctx, models.OwnerBlog, post.ID)
	require.NoError(t, err)
	require.Len(t, blogComments, 1)
	assert.Equal(t, "post", blogComments[0].Message)

	_, err = repo.FindForOwner(ctx, models.OwnerKind("photo"), post.ID)
	assert.Error(t, err)
}

func TestCommentRepo_UnknownOwnerIsForeignKeyError(t *testing.T) {
	db := databasetest.Open(t)

	err := db.CommentRepo().Add(context.Background(), &models.Comment{Name: "X", Message: "Y", DiaryID: ptr(uint(4242))})
	require.Error(t, err)
	assert.True(t, errs.IsForeignKeyConstraintError(err))
}

func TestCommentRepo_ApproveUnknown(t *testing.T) {
	db := databasetest.Open(t)

	err := db.CommentRepo().Approve(context.Background(), 77)
	assert.True(t, errs.IsNotFound(err))
}
