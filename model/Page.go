package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page is a CMS-managed site page. Content is an opaque JSON layout document
// owned by the page builder; the server only checks it is well-formed JSON.
type Page struct {
	ID      uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Slug    string       `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Lang    Language     `gorm:"size:5;not null;default:en" json:"lang"`
	Title   string       `gorm:"type:text;not null" json:"title"`
	Content JSONDocument `gorm:"type:text" json:"content"`
	Status  PageStatus   `gorm:"size:20;not null;default:draft" json:"status"`

	SeoTitle       *string `gorm:"type:text" json:"seoTitle"`
	SeoDescription *string `gorm:"type:text" json:"seoDescription"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"createdBy"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Page) BeforeCreate(_ *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
