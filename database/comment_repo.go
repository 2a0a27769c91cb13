package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindForOwner returns the approved comments on one diary or blog post, newest first.
func (r *CommentRepo) FindForOwner(ctx context.Context, kind models.OwnerKind, ownerID uint) ([]*models.Comment, error) {
	var column string
	switch kind {
	case models.OwnerDiary:
		column = "diary_id"
	case models.OwnerBlog:
		column = "blog_post_id"
	default:
		return nil, fmt.Errorf("find comments: unknown owner kind %q", kind)
	}

	comments := make([]*models.Comment, 0)
	err := newestFirst(r.db.WithContext(ctx).
		Where("approved = ?", true).
		Where(column+" = ?", ownerID)).
		Find(&comments).Error
	if err != nil {
		return nil, classify("find comments", err)
	}
	return comments, nil
}

// Add stores a new comment awaiting moderation. Approved is always reset.
func (r *CommentRepo) Add(ctx context.Context, comment *models.Comment) error {
	comment.Approved = false
	return classify("add comment", r.db.WithContext(ctx).Create(comment).Error)
}

// Approve makes a comment visible.
func (r *CommentRepo) Approve(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Update("approved", true)
	if res.Error != nil {
		return classify("approve comment", res.Error)
	}
	if res.RowsAffected == 0 {
		return classify("approve comment", gorm.ErrRecordNotFound)
	}
	return nil
}

// FindPending lists comments still waiting for approval, oldest first.
func (r *CommentRepo) FindPending(ctx context.Context) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, classify("find pending comments", err)
	}
	return comments, nil
}
