package database

import (
	"context"
	"strings"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

// DefaultDiaryPageSize applies when a diary listing asks for no limit.
const DefaultDiaryPageSize = 10

var diarySearchColumns = []string{"title", "excerpt", "location"}

// DiaryFilter narrows FindAll. Empty fields do not filter.
type DiaryFilter struct {
	Region string
	Search string
	Tags   []string
	Page   Page
}

type DiaryRepo struct {
	db *gorm.DB
}

func NewDiaryRepo(db *gorm.DB) *DiaryRepo {
	return &DiaryRepo{db}
}

// FindAll returns published diaries matching filter, newest first.
func (r *DiaryRepo) FindAll(ctx context.Context, filter DiaryFilter) ([]*models.Diary, error) {
	tx := r.db.WithContext(ctx).Model(&models.Diary{}).Where("published = ?", true)
	if region := strings.TrimSpace(filter.Region); region != "" {
		tx = tx.Where("region = ?", region)
	}
	tx = containsAny(tx, filter.Search, diarySearchColumns...)
	tx = withTags(tx, "tags", filter.Tags)
	tx = filter.Page.apply(newestFirst(tx), DefaultDiaryPageSize)

	diaries := make([]*models.Diary, 0)
	if err := tx.Find(&diaries).Error; err != nil {
		return nil, classify("find diaries", err)
	}
	return diaries, nil
}

// FindBySlug returns the published diary with the given slug.
func (r *DiaryRepo) FindBySlug(ctx context.Context, slug string) (*models.Diary, error) {
	var diary models.Diary
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&diary).Error
	if err != nil {
		return nil, classify("find diary by slug", err)
	}
	return &diary, nil
}

// FindByID returns a diary by id whether or not it is published.
func (r *DiaryRepo) FindByID(ctx context.Context, id uint) (*models.Diary, error) {
	var diary models.Diary
	if err := r.db.WithContext(ctx).First(&diary, id).Error; err != nil {
		return nil, classify("find diary", err)
	}
	return &diary, nil
}

// Add inserts a new diary and fills in its id and timestamps.
func (r *DiaryRepo) Add(ctx context.Context, diary *models.Diary) error {
	return classify("add diary", r.db.WithContext(ctx).Create(diary).Error)
}

// Update overwrites an existing diary and refreshes its updatedAt.
func (r *DiaryRepo) Update(ctx context.Context, diary *models.Diary) error {
	diary.UpdatedAt = r.db.NowFunc()
	return classify("update diary", saveExisting(r.db.WithContext(ctx), diary, diary.ID))
}

// Delete removes a diary. Its comments go with it and gallery images keep
// existing without the reference.
func (r *DiaryRepo) Delete(ctx context.Context, id uint) error {
	return classify("delete diary", deleteByID(r.db.WithContext(ctx), &models.Diary{}, id))
}
