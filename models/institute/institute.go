package institute

import (
	"time"

	"gorm.io/datatypes"
)

// InstituteProfile holds the institute's public information. Exactly one
// row is expected; the seeder creates it and the API reads the first row.
type InstituteProfile struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"type:varchar(200);not null" json:"name"`
	Certification   string `gorm:"type:varchar(200)" json:"certification"`
	FoundingYear    int    `gorm:"not null" json:"founding_year"`
	StudentsPerYear int    `gorm:"default:0" json:"students_per_year"`
	TotalAlumni     int    `gorm:"default:0" json:"total_alumni"`
	TotalCenters    int    `gorm:"default:0" json:"total_centers"`
	Tagline         string `gorm:"type:text" json:"tagline"`
	About           string `gorm:"type:text" json:"about"`

	// Educational partners, a JSON list of names
	Partners datatypes.JSON `gorm:"type:jsonb" json:"partners,omitempty"`

	Email   string `gorm:"type:varchar(255)" json:"email"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// YearsOfExperience derives the institute's age from its founding year.
func (p *InstituteProfile) YearsOfExperience(nowYear int) int {
	if nowYear < p.FoundingYear {
		return 0
	}
	return nowYear - p.FoundingYear
}
