package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var baseTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type diaryRepo interface {
	Add(ctx context.Context, diary *models.Diary) error
}

type blogRepo interface {
	Add(ctx context.Context, post *models.BlogPost) error
}

func newDiary(slug string, published bool, minute int) *models.Diary {
	return &models.Diary{
		Title:         "Diary " + slug,
		Slug:          slug,
		Location:      "Somewhere",
		Region:        "north",
		Excerpt:       "An excerpt",
		FeaturedImage: "https://img.example.com/" + slug + ".jpg",
		Journey:       "We walked.",
		HowToReach:    "Bus",
		WhereToStay:   "Hostel",
		WhatToEat:     "Noodles",
		WhatToDo:      "Hike",
		Tips:          "Pack light",
		Photos:        datatypes.JSONSlice[string]{},
		ClosingQuote:  "Onward.",
		Tags:          datatypes.JSONSlice[string]{},
		ReadTime:      5,
		Published:     published,
		CreatedAt:     baseTime.Add(time.Duration(minute) * time.Minute),
	}
}

func newPost(slug string, published bool, minute int) *models.BlogPost {
	return &models.BlogPost{
		Title:         "Post " + slug,
		Slug:          slug,
		Excerpt:       "An excerpt",
		Content:       "Some content",
		FeaturedImage: "https://img.example.com/" + slug + ".jpg",
		Category:      models.CategoryTips,
		Tags:          datatypes.JSONSlice[string]{},
		ReadTime:      3,
		Published:     published,
		CreatedAt:     baseTime.Add(time.Duration(minute) * time.Minute),
	}
}

func addDiaries(t *testing.T, repo diaryRepo, diaries ...*models.Diary) {
	t.Helper()
	for _, d := range diaries {
		require.NoError(t, repo.Add(context.Background(), d))
	}
}

func addPosts(t *testing.T, repo blogRepo, posts ...*models.BlogPost) {
	t.Helper()
	for _, p := range posts {
		require.NoError(t, repo.Add(context.Background(), p))
	}
}

func slugsOfDiaries(diaries []*models.Diary) []string {
	out := make([]string, 0, len(diaries))
	for _, d := range diaries {
		out = append(out, d.Slug)
	}
	return out
}

func slugsOfPosts(posts []*models.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
