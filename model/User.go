package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a CMS account. There is no public registration; users exist only
// through seeding. The password hash is never serialized.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Role      Role       `gorm:"size:50;not null;default:content_creator" json:"role"`
	Avatar    *string    `gorm:"type:text" json:"avatar"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (u *User) BeforeCreate(_ *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
