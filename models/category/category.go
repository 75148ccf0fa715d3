package category

import (
	"time"
)

// CourseCategory groups courses by program type, e.g. Diploma or
// Advanced Diploma. Looked up by slug on the public API.
type CourseCategory struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	Slug         string    `gorm:"type:varchar(100);not null;unique" json:"slug"`
	Description  string    `gorm:"type:text" json:"description"`
	DurationInfo string    `gorm:"type:varchar(50)" json:"duration_info"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
