package seeders

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	instituteModel "institute-backend/models/institute"
)

// SeedInstituteProfile creates the default public profile when the
// table is empty. The row is edited in place afterwards, never
// replaced.
func SeedInstituteProfile(db *gorm.DB) {
	var count int64
	if err := db.Model(&instituteModel.InstituteProfile{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check institute profile: %v", err)
		return
	}
	if count > 0 {
		return
	}

	profile := instituteModel.InstituteProfile{
		Name:            "Chhattisgarh School of Computer",
		Certification:   "ISO 9001:2015 Certified",
		FoundingYear:    2001,
		StudentsPerYear: 1200,
		TotalAlumni:     25000,
		TotalCenters:    3,
		Tagline:         "Building careers in computing since 2001",
		About:           "A computer training institute offering certificate and diploma programs in programming, office productivity and accounting software.",
		Partners:        datatypes.JSON([]byte(`[]`)),
		Email:           "info@example.edu",
		Phone:           "+91-0000000000",
		Address:         "Raipur, Chhattisgarh",
	}

	if err := db.Create(&profile).Error; err != nil {
		log.Printf("❌ Failed to seed institute profile: %v", err)
		return
	}
	log.Printf("✅ Seeded default institute profile")
}
