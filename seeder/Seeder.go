package seeder

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"eibs-cms/model"
	"eibs-cms/util"
)

// Seed creates the initial admin account and the default pages. Idempotent:
// existing records are left alone. This is the only way users come into
// existence; there is no registration endpoint.
func Seed(db *gorm.DB) {
	seedAdminUser(db)
	seedPages(db)
}

func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@eibs.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := model.User{
		Email:    email,
		Password: hashed,
		Name:     "Admin User",
		Role:     model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user: %s", email)
}

func seedPages(db *gorm.DB) {
	emptyContent, _ := json.Marshal([]map[string]interface{}{{}})

	pages := []model.Page{
		{
			Slug:    "about",
			Lang:    model.LangEnglish,
			Title:   "About",
			Content: model.JSONDocument(emptyContent),
			Status:  model.PageStatusPublished,
		},
		{
			Slug:    "privacy",
			Lang:    model.LangEnglish,
			Title:   "Privacy Policy",
			Content: model.JSONDocument(emptyContent),
			Status:  model.PageStatusPublished,
		},
	}

	for _, page := range pages {
		var existing model.Page
		if err := db.Where("slug = ?", page.Slug).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&page).Error; err != nil {
			log.Printf("failed to seed page %s: %v", page.Slug, err)
		} else {
			log.Printf("Seeded page: %s", page.Slug)
		}
	}
}
