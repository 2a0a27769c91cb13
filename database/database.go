package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db               *gorm.DB
	userRepo         *UserRepo
	diaryRepo        *DiaryRepo
	blogPostRepo     *BlogPostRepo
	commentRepo      *CommentRepo
	newsletterRepo   *NewsletterRepo
	contactRepo      *ContactRepo
	galleryImageRepo *GalleryImageRepo
	searchRepo       *SearchRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		userRepo:         NewUserRepo(db),
		diaryRepo:        NewDiaryRepo(db),
		blogPostRepo:     NewBlogPostRepo(db),
		commentRepo:      NewCommentRepo(db),
		newsletterRepo:   NewNewsletterRepo(db),
		contactRepo:      NewContactRepo(db),
		galleryImageRepo: NewGalleryImageRepo(db),
		searchRepo:       NewSearchRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) DiaryRepo() *DiaryRepo {
	return d.diaryRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) NewsletterRepo() *NewsletterRepo {
	return d.newsletterRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) GalleryImageRepo() *GalleryImageRepo {
	return d.galleryImageRepo
}

func (d Database) SearchRepo() *SearchRepo {
	return d.searchRepo
}

// Migrate creates or updates every table, index and foreign key.
func (d Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks that the primary connection is reachable.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
