package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseStudy is a portfolio entry shown on the public site and edited in the
// admin console.
type CaseStudy struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug     string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Lang     Language  `gorm:"size:5;not null;default:en" json:"lang"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	Summary  string    `gorm:"type:text;not null" json:"summary"`
	Client   string    `gorm:"type:text;not null" json:"client"`
	Industry StringList `gorm:"type:text;not null" json:"industry"`
	Region   string    `gorm:"type:text;not null" json:"region"`
	Year     int       `gorm:"not null" json:"year"`
	Services StringList `gorm:"type:text;not null" json:"services"`

	Deliverables StringList `gorm:"type:text" json:"deliverables"`
	Timeline     *string    `gorm:"type:text" json:"timeline"`
	Links        JSONMap    `gorm:"type:text" json:"links"`
	CoverImage   string     `gorm:"type:text;not null" json:"coverImage"`
	Gallery      StringList `gorm:"type:text" json:"gallery"`
	Videos       StringList `gorm:"type:text" json:"videos"`
	Models3d     StringList `gorm:"type:text;column:models_3d" json:"models3d"`
	BeforeAfter  JSONMap    `gorm:"type:text" json:"beforeAfter"`

	// Narrative sections, all optional.
	Challenge           *string `gorm:"type:text" json:"challenge"`
	Strategy            *string `gorm:"type:text" json:"strategy"`
	SolutionBrand       *string `gorm:"type:text" json:"solutionBrand"`
	SolutionPackaging   *string `gorm:"type:text" json:"solutionPackaging"`
	SolutionSocialVideo *string `gorm:"type:text" json:"solutionSocialVideo"`
	SolutionWeb         *string `gorm:"type:text" json:"solutionWeb"`
	Solution3d          *string `gorm:"type:text;column:solution_3d" json:"solution3d"`
	Execution           *string `gorm:"type:text" json:"execution"`

	ImpactKpis KpiList `gorm:"type:text" json:"impactKpis"`
	Featured   bool    `gorm:"not null;default:false" json:"featured"`

	SeoTitle       *string `gorm:"type:text" json:"seoTitle"`
	SeoDescription *string `gorm:"type:text" json:"seoDescription"`
	OgImage        *string `gorm:"type:text" json:"ogImage"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"createdBy"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (cs *CaseStudy) BeforeCreate(_ *gorm.DB) (err error) {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	return
}
