package model

import "time"

// Setting is a site-wide key/value record. The "theme" key holds the brand
// color tokens.
type Setting struct {
	Key       string       `gorm:"primaryKey;size:100" json:"key"`
	Value     JSONDocument `gorm:"type:text" json:"value"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SettingKeyTheme is the settings row holding the theme color tokens.
const SettingKeyTheme = "theme"
