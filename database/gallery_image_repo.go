package database

import (
	"context"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

const DefaultGalleryPageSize = 20

type GalleryImageRepo struct {
	db *gorm.DB
}

func NewGalleryImageRepo(db *gorm.DB) *GalleryImageRepo {
	return &GalleryImageRepo{db}
}

// FindAll returns one page of gallery images, newest first.
func (r *GalleryImageRepo) FindAll(ctx context.Context, page Page) ([]*models.GalleryImage, error) {
	images := make([]*models.GalleryImage, 0)
	tx := page.apply(newestFirst(r.db.WithContext(ctx)), DefaultGalleryPageSize)
	if err := tx.Find(&images).Error; err != nil {
		return nil, classify("find gallery images", err)
	}
	return images, nil
}

func (r *GalleryImageRepo) FindByID(ctx context.Context, id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, classify("find gallery image", err)
	}
	return &image, nil
}

// Add inserts a gallery image. A diaryId that names no diary fails with
// errs.ErrForeignKeyConstraint.
func (r *GalleryImageRepo) Add(ctx context.Context, image *models.GalleryImage) error {
	return classify("add gallery image", r.db.WithContext(ctx).Create(image).Error)
}
