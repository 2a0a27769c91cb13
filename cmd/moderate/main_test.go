package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rpupo63/travel-blog-backend/database/databasetest"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs(" 4, 7,,12 ")
	require.NoError(t, err)
	assert.Equal(t, []uint{4, 7, 12}, ids)

	_, err = parseIDs("4,x")
	assert.Error(t, err)
	_, err = parseIDs("0")
	assert.Error(t, err)
	_, err = parseIDs(" , ")
	assert.Error(t, err)
}

func TestApproveAll(t *testing.T) {
	db := databasetest.Open(t)
	ctx := context.Background()

	diary := &models.Diary{
		Title:     "Hampi",
		Slug:      "hampi",
		Location:  "Hampi",
		Region:    "south",
		Excerpt:   "Boulders",
		Journey:   "Overnight bus.",
		Photos:    datatypes.JSONSlice[string]{},
		Tags:      datatypes.JSONSlice[string]{},
		ReadTime:  4,
		Published: true,
	}
	require.NoError(t, db.DiaryRepo().Add(ctx, diary))
	comment := &models.Comment{Name: "Ana", Message: "Lovely", DiaryID: &diary.ID}
	require.NoError(t, db.CommentRepo().Add(ctx, comment))

	failed := approveAll(ctx, db.CommentRepo(), []uint{comment.ID, comment.ID + 100})
	assert.Equal(t, 1, failed)

	pending, err := db.CommentRepo().FindPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	visible, err := db.CommentRepo().FindForOwner(ctx, models.OwnerDiary, diary.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestDescribeOwners(t *testing.T) {
	db := databasetest.Open(t)
	ctx := context.Background()

	draft := &models.Diary{
		Title:    "Draft: Coorg",
		Slug:     "coorg",
		Location: "Coorg",
		Region:   "south",
		Excerpt:  "Coffee",
		Journey:  "Ghat roads.",
		Photos:   datatypes.JSONSlice[string]{},
		Tags:     datatypes.JSONSlice[string]{},
	}
	require.NoError(t, db.DiaryRepo().Add(ctx, draft))
	post := &models.BlogPost{
		Title:    "Packing light",
		Slug:     "packing-light",
		Excerpt:  "Less",
		Content:  "One bag.",
		Category: models.CategoryGear,
		Tags:     datatypes.JSONSlice[string]{},
	}
	require.NoError(t, db.BlogPostRepo().Add(ctx, post))

	require.NoError(t, db.CommentRepo().Add(ctx, &models.Comment{Name: "Ana", Message: "Lovely", DiaryID: &draft.ID}))
	require.NoError(t, db.CommentRepo().Add(ctx, &models.Comment{Name: "Ben", Message: "Which bag?\nAsking for a friend", BlogPostID: &post.ID}))

	pending, err := db.CommentRepo().FindPending(ctx)
	require.NoError(t, err)

	described := describeOwners(ctx, db.DiaryRepo(), db.BlogPostRepo(), pending)
	require.Len(t, described, 2)
	assert.Equal(t, fmt.Sprintf("diary/%d %q", draft.ID, "Draft: Coorg"), described[0].Target)
	assert.Equal(t, fmt.Sprintf("blog/%d %q", post.ID, "Packing light"), described[1].Target)

	var out bytes.Buffer
	printPending(&out, described)
	assert.Contains(t, out.String(), "2 comment(s) awaiting approval")
	assert.Contains(t, out.String(), "\n    Asking for a friend")

	out.Reset()
	printPending(&out, nil)
	assert.Equal(t, "No comments awaiting approval\n", out.String())
}
