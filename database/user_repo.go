package database

import (
	"context"

	"github.com/rpupo63/travel-blog-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, classify("find user", err)
	}
	return &user, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, classify("find user by username", err)
	}
	return &user, nil
}

func (r *UserRepo) Add(ctx context.Context, user *models.User) error {
	return classify("add user", r.db.WithContext(ctx).Create(user).Error)
}

// UpdatePassword replaces the stored hash for a user.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return classify("update user password", res.Error)
	}
	if res.RowsAffected == 0 {
		return classify("update user password", gorm.ErrRecordNotFound)
	}
	return nil
}
