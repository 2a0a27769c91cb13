package models

import (
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
)

// OwnerKind names the kind of entity a comment belongs to.
type OwnerKind string

const (
	OwnerDiary OwnerKind = "diary"
	OwnerBlog  OwnerKind = "blog"
)

// ParseOwnerKind accepts the path segment used by the comments endpoint.
func ParseOwnerKind(s string) (OwnerKind, bool) {
	switch OwnerKind(s) {
	case OwnerDiary, OwnerBlog:
		return OwnerKind(s), true
	}
	return "", false
}

// Comment is a reader comment on a diary or a blog post. New comments stay
// hidden until approved.
type Comment struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email      *string   `json:"email" db:"email" gorm:"type:text"`
	Message    string    `json:"message" db:"message" gorm:"type:text;not null"`
	DiaryID    *uint     `json:"diaryId" db:"diary_id" gorm:"index:idx_comments_diary"`
	BlogPostID *uint     `json:"blogPostId" db:"blog_post_id" gorm:"index:idx_comments_blog_post"`
	Approved   bool      `json:"approved" db:"approved" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

// CommentInput has no approved field; moderation happens out of band.
type CommentInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Message    *string `json:"message"`
	DiaryID    *uint   `json:"diaryId"`
	BlogPostID *uint   `json:"blogPostId"`
}

func (in CommentInput) Validate() error {
	var fe errs.FieldErrors
	requireText(&fe, "name", in.Name)
	if in.Email != nil && !isBlank(*in.Email) {
		checkEmail(&fe, "email", *in.Email)
	}
	requireText(&fe, "message", in.Message)

	switch {
	case in.DiaryID == nil && in.BlogPostID == nil:
		fe.Add("diaryId", "Either diaryId or blogPostId is required")
	case in.DiaryID != nil && in.BlogPostID != nil:
		fe.Add("blogPostId", "Only one of diaryId or blogPostId may be set")
	}
	return fe.Err()
}

func (in CommentInput) ToComment() Comment {
	var email *string
	if in.Email != nil && !isBlank(*in.Email) {
		trimmed := normalizeEmail(*in.Email)
		email = &trimmed
	}
	return Comment{
		Name:       deref(in.Name),
		Email:      email,
		Message:    deref(in.Message),
		DiaryID:    in.DiaryID,
		BlogPostID: in.BlogPostID,
	}
}
