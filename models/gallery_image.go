package models

import (
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
)

type GalleryImage struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    string    `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	Location    string    `json:"location" db:"location" gorm:"type:text;not null"`
	DiaryID     *uint     `json:"diaryId" db:"diary_id" gorm:"index:idx_gallery_images_diary"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null;index:idx_gallery_images_created"`
}

type GalleryImageInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Location    *string `json:"location"`
	DiaryID     *uint   `json:"diaryId"`
}

func (in GalleryImageInput) Validate() error {
	var fe errs.FieldErrors
	requireText(&fe, "title", in.Title)
	requireText(&fe, "description", in.Description)
	requireText(&fe, "imageUrl", in.ImageURL)
	requireText(&fe, "location", in.Location)
	return fe.Err()
}

func (in GalleryImageInput) ToGalleryImage() GalleryImage {
	return GalleryImage{
		Title:       deref(in.Title),
		Description: deref(in.Description),
		ImageURL:    deref(in.ImageURL),
		Location:    deref(in.Location),
		DiaryID:     in.DiaryID,
	}
}
