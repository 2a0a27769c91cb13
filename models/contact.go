package models

import (
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
)

// Contact is a message sent through the contact form. Read is never flipped by the API.
type Contact struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null"`
	Read      bool      `json:"read" db:"read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

type ContactInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Subject  *string `json:"subject"`
	Message  *string `json:"message"`
	Category *string `json:"category"`
}

func (in ContactInput) Validate() error {
	var fe errs.FieldErrors
	requireText(&fe, "name", in.Name)
	if requireText(&fe, "email", in.Email) {
		checkEmail(&fe, "email", *in.Email)
	}
	requireText(&fe, "subject", in.Subject)
	requireText(&fe, "message", in.Message)
	requireText(&fe, "category", in.Category)
	return fe.Err()
}

func (in ContactInput) ToContact() Contact {
	return Contact{
		Name:     deref(in.Name),
		Email:    normalizeEmail(deref(in.Email)),
		Subject:  deref(in.Subject),
		Message:  deref(in.Message),
		Category: deref(in.Category),
	}
}
