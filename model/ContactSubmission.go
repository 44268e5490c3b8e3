package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is a message from the public contact form. Status always
// starts at "new" regardless of what the client sends.
type ContactSubmission struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string           `gorm:"type:text;not null" json:"name"`
	Email     string           `gorm:"size:255;not null" json:"email"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Status    SubmissionStatus `gorm:"size:20;not null;default:new" json:"status"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"createdAt"`
}

func (s *ContactSubmission) BeforeCreate(_ *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
