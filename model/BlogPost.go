package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is a journal article. The body is rich-text HTML produced by the
// admin editor.
type BlogPost struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Slug       string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Lang       Language       `gorm:"size:5;not null;default:en" json:"lang"`
	Title      string         `gorm:"type:text;not null" json:"title"`
	Summary    *string        `gorm:"type:text" json:"summary"`
	CoverImage string         `gorm:"type:text;not null" json:"coverImage"`
	Body       string         `gorm:"type:text;not null" json:"body"`
	Tags       StringList     `gorm:"type:text" json:"tags"`
	Status     BlogPostStatus `gorm:"size:20;not null;default:draft" json:"status"`

	ScheduledAt *time.Time `json:"scheduledAt"`

	SeoTitle       *string `gorm:"type:text" json:"seoTitle"`
	SeoDescription *string `gorm:"type:text" json:"seoDescription"`

	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"createdBy"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (p *BlogPost) BeforeCreate(_ *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
