package database

import (
	"context"
	"strings"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

const DefaultBlogPageSize = 10

var blogSearchColumns = []string{"title", "excerpt", "content"}

type BlogPostFilter struct {
	Category string
	Search   string
	Tags     []string
	Page     Page
}

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns published blog posts matching filter, newest first.
func (r *BlogPostRepo) FindAll(ctx context.Context, filter BlogPostFilter) ([]*models.BlogPost, error) {
	tx := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("published = ?", true)
	if category := strings.TrimSpace(filter.Category); category != "" {
		tx = tx.Where("category = ?", category)
	}
	tx = containsAny(tx, filter.Search, blogSearchColumns...)
	tx = withTags(tx, "tags", filter.Tags)
	tx = filter.Page.apply(newestFirst(tx), DefaultBlogPageSize)

	posts := make([]*models.BlogPost, 0)
	if err := tx.Find(&posts).Error; err != nil {
		return nil, classify("find blog posts", err)
	}
	return posts, nil
}

// FindBySlug returns the published blog post with the given slug.
func (r *BlogPostRepo) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err != nil {
		return nil, classify("find blog post by slug", err)
	}
	return &post, nil
}

func (r *BlogPostRepo) FindByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, classify("find blog post", err)
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(ctx context.Context, post *models.BlogPost) error {
	return classify("add blog post", r.db.WithContext(ctx).Create(post).Error)
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(ctx context.Context, post *models.BlogPost) error {
	post.UpdatedAt = r.db.NowFunc()
	return classify("update blog post", saveExisting(r.db.WithContext(ctx), post, post.ID))
}

// Delete removes a blog post and its comments.
func (r *BlogPostRepo) Delete(ctx context.Context, id uint) error {
	return classify("delete blog post", deleteByID(r.db.WithContext(ctx), &models.BlogPost{}, id))
}
