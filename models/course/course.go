package course

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"institute-backend/models/category"
)

// Course is a catalog entry. Students browse the active set and apply
// for enrollment while enrollment_open is true.
type Course struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(200);not null" json:"name"`
	Code string `gorm:"type:varchar(20);not null;unique" json:"code"`

	// Foreign key for category relationship
	CategoryID uint                    `gorm:"not null;index" json:"category_id"`
	Category   category.CourseCategory `gorm:"foreignKey:CategoryID" json:"category"`

	Duration       string  `gorm:"type:varchar(50)" json:"duration"`
	DurationMonths int     `gorm:"not null" json:"duration_months"`
	Fees           float64 `gorm:"type:decimal(10,2)" json:"fees"`

	Objective      string `gorm:"type:text" json:"objective"`
	Description    string `gorm:"type:text" json:"description"`
	TargetAudience string `gorm:"type:text" json:"target_audience"`

	// Structured syllabus, kept as a JSON document
	Syllabus datatypes.JSON `gorm:"type:jsonb" json:"syllabus,omitempty"`

	IsFeatured     bool `gorm:"default:false" json:"is_featured"`
	IsActive       bool `gorm:"default:true" json:"is_active"`
	EnrollmentOpen bool `gorm:"default:true" json:"enrollment_open"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FormattedFees returns the fee amount with the currency marker used on
// the public site.
func (c *Course) FormattedFees() string {
	return fmt.Sprintf("₹ %.2f", c.Fees)
}
