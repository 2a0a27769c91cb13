package models

import (
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
)

type Newsletter struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey"`
	Email      string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_newsletters_email"`
	Subscribed bool      `json:"subscribed" db:"subscribed" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

type NewsletterInput struct {
	Email *string `json:"email"`
}

func (in NewsletterInput) Validate() error {
	var fe errs.FieldErrors
	if requireText(&fe, "email", in.Email) {
		checkEmail(&fe, "email", *in.Email)
	}
	return fe.Err()
}

func (in NewsletterInput) ToNewsletter() Newsletter {
	return Newsletter{
		Email:      normalizeEmail(deref(in.Email)),
		Subscribed: true,
	}
}
