package seeders

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	adminModel "institute-backend/models/admin"
)

// SeedAdmin ensures the administrator account from the environment
// exists. Without it nobody can approve student registrations.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("⚠️ ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing adminModel.Administrator
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Failed to check administrator: %v", err)
		return
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	admin := adminModel.Administrator{
		Name:  name,
		Email: email,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("❌ Failed to hash administrator password: %v", err)
		return
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed administrator: %v", err)
		return
	}
	log.Printf("✅ Seeded administrator account %s", email)
}
