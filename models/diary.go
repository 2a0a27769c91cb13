package models

import (
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
	"gorm.io/datatypes"
)

// Diary is a long-form travel diary entry for one destination
type Diary struct {
	ID            uint                        `json:"id" db:"id" gorm:"primaryKey"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_diaries_slug"`
	Location      string                      `json:"location" db:"location" gorm:"type:text;not null"`
	Region        string                      `json:"region" db:"region" gorm:"type:text;not null;index:idx_diaries_region"`
	Excerpt       string                      `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	FeaturedImage string                      `json:"featuredImage" db:"featured_image" gorm:"type:text;not null"`
	Journey       string                      `json:"journey" db:"journey" gorm:"type:text;not null"`
	HowToReach    string                      `json:"howToReach" db:"how_to_reach" gorm:"type:text;not null"`
	WhereToStay   string                      `json:"whereToStay" db:"where_to_stay" gorm:"type:text;not null"`
	WhatToEat     string                      `json:"whatToEat" db:"what_to_eat" gorm:"type:text;not null"`
	WhatToDo      string                      `json:"whatToDo" db:"what_to_do" gorm:"type:text;not null"`
	Tips          string                      `json:"tips" db:"tips" gorm:"type:text;not null"`
	Photos        datatypes.JSONSlice[string] `json:"photos" db:"photos" gorm:"not null"`
	ClosingQuote  string                      `json:"closingQuote" db:"closing_quote" gorm:"type:text;not null"`
	Tags          datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"not null"`
	ReadTime      int                         `json:"readTime" db:"read_time" gorm:"type:integer;not null"`
	Published     bool                        `json:"published" db:"published" gorm:"not null;default:false;index:idx_diaries_published_created,priority:1"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at" gorm:"not null;index:idx_diaries_published_created,priority:2"`
	UpdatedAt     time.Time                   `json:"updatedAt" db:"updated_at" gorm:"not null"`

	Comments      []Comment      `json:"-" gorm:"foreignKey:DiaryID;references:ID;constraint:OnDelete:CASCADE"`
	GalleryImages []GalleryImage `json:"-" gorm:"foreignKey:DiaryID;references:ID;constraint:OnDelete:SET NULL"`
}

// DiaryInput is the write schema for a diary: every column except the
// server-generated ones (id, timestamps).
type DiaryInput struct {
	Title         *string  `json:"title"`
	Slug          *string  `json:"slug"`
	Location      *string  `json:"location"`
	Region        *string  `json:"region"`
	Excerpt       *string  `json:"excerpt"`
	FeaturedImage *string  `json:"featuredImage"`
	Journey       *string  `json:"journey"`
	HowToReach    *string  `json:"howToReach"`
	WhereToStay   *string  `json:"whereToStay"`
	WhatToEat     *string  `json:"whatToEat"`
	WhatToDo      *string  `json:"whatToDo"`
	Tips          *string  `json:"tips"`
	Photos        []string `json:"photos"`
	ClosingQuote  *string  `json:"closingQuote"`
	Tags          []string `json:"tags"`
	ReadTime      *int     `json:"readTime"`
	Published     *bool    `json:"published"`
}

func (in DiaryInput) Validate() error {
	var fe errs.FieldErrors
	requireText(&fe, "title", in.Title)
	requireSlug(&fe, "slug", in.Slug)
	requireText(&fe, "location", in.Location)
	requireText(&fe, "region", in.Region)
	requireText(&fe, "excerpt", in.Excerpt)
	requireText(&fe, "featuredImage", in.FeaturedImage)
	requireText(&fe, "journey", in.Journey)
	requireText(&fe, "howToReach", in.HowToReach)
	requireText(&fe, "whereToStay", in.WhereToStay)
	requireText(&fe, "whatToEat", in.WhatToEat)
	requireText(&fe, "whatToDo", in.WhatToDo)
	requireText(&fe, "tips", in.Tips)
	checkList(&fe, "photos", in.Photos)
	requireText(&fe, "closingQuote", in.ClosingQuote)
	checkList(&fe, "tags", in.Tags)
	requireReadTime(&fe, "readTime", in.ReadTime)
	return fe.Err()
}

// ToDiary builds the row to insert. Call Validate first.
func (in DiaryInput) ToDiary() Diary {
	return Diary{
		Title:         deref(in.Title),
		Slug:          deref(in.Slug),
		Location:      deref(in.Location),
		Region:        deref(in.Region),
		Excerpt:       deref(in.Excerpt),
		FeaturedImage: deref(in.FeaturedImage),
		Journey:       deref(in.Journey),
		HowToReach:    deref(in.HowToReach),
		WhereToStay:   deref(in.WhereToStay),
		WhatToEat:     deref(in.WhatToEat),
		WhatToDo:      deref(in.WhatToDo),
		Tips:          deref(in.Tips),
		Photos:        cleanList(in.Photos),
		ClosingQuote:  deref(in.ClosingQuote),
		Tags:          cleanList(in.Tags),
		ReadTime:      derefInt(in.ReadTime),
		Published:     in.Published != nil && *in.Published,
	}
}
