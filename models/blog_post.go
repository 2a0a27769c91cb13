package models

import (
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
	"gorm.io/datatypes"
)

// Blog post categories used by the site. The column is free text; these are convention only.
const (
	CategoryPhilosophy  = "philosophy"
	CategoryGear        = "gear"
	CategoryTips        = "tips"
	CategoryReflections = "reflections"
)

// BlogPost represents a complete blog post with metadata
type BlogPost struct {
	ID            uint                        `json:"id" db:"id" gorm:"primaryKey"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_blog_posts_slug"`
	Excerpt       string                      `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content       string                      `json:"content" db:"content" gorm:"type:text;not null"`
	FeaturedImage string                      `json:"featuredImage" db:"featured_image" gorm:"type:text;not null"`
	Category      string                      `json:"category" db:"category" gorm:"type:text;not null;index:idx_blog_posts_category"`
	Tags          datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"not null"`
	ReadTime      int                         `json:"readTime" db:"read_time" gorm:"type:integer;not null"`
	Published     bool                        `json:"published" db:"published" gorm:"not null;default:false;index:idx_blog_posts_published_created,priority:1"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at" gorm:"not null;index:idx_blog_posts_published_created,priority:2"`
	UpdatedAt     time.Time                   `json:"updatedAt" db:"updated_at" gorm:"not null"`

	Comments []Comment `json:"-" gorm:"foreignKey:BlogPostID;references:ID;constraint:OnDelete:CASCADE"`
}

type BlogPostInput struct {
	Title         *string  `json:"title"`
	Slug          *string  `json:"slug"`
	Excerpt       *string  `json:"excerpt"`
	Content       *string  `json:"content"`
	FeaturedImage *string  `json:"featuredImage"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	ReadTime      *int     `json:"readTime"`
	Published     *bool    `json:"published"`
}

func (in BlogPostInput) Validate() error {
	var fe errs.FieldErrors
	requireText(&fe, "title", in.Title)
	requireSlug(&fe, "slug", in.Slug)
	requireText(&fe, "excerpt", in.Excerpt)
	requireText(&fe, "content", in.Content)
	requireText(&fe, "featuredImage", in.FeaturedImage)
	requireText(&fe, "category", in.Category)
	checkList(&fe, "tags", in.Tags)
	requireReadTime(&fe, "readTime", in.ReadTime)
	return fe.Err()
}

func (in BlogPostInput) ToBlogPost() BlogPost {
	return BlogPost{
		Title:         deref(in.Title),
		Slug:          deref(in.Slug),
		Excerpt:       deref(in.Excerpt),
		Content:       deref(in.Content),
		FeaturedImage: deref(in.FeaturedImage),
		Category:      deref(in.Category),
		Tags:          cleanList(in.Tags),
		ReadTime:      derefInt(in.ReadTime),
		Published:     in.Published != nil && *in.Published,
	}
}
