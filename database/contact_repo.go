package database

import (
	"context"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add stores a contact form message.
func (r *ContactRepo) Add(ctx context.Context, contact *models.Contact) error {
	return classify("add contact", r.db.WithContext(ctx).Create(contact).Error)
}
