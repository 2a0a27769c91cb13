package database

import (
	"context"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

type NewsletterRepo struct {
	db *gorm.DB
}

func NewNewsletterRepo(db *gorm.DB) *NewsletterRepo {
	return &NewsletterRepo{db}
}

// Add subscribes an email. An email already on the list fails with errs.ErrAlreadyExists.
func (r *NewsletterRepo) Add(ctx context.Context, subscription *models.Newsletter) error {
	return classify("add newsletter subscription", r.db.WithContext(ctx).Create(subscription).Error)
}

// Count is the number of stored subscriptions for email.
func (r *NewsletterRepo) Count(ctx context.Context, email string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Newsletter{}).Where("email = ?", email).Count(&n).Error
	return n, classify("count newsletter subscriptions", err)
}
