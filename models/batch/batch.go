package batch

import (
	"time"

	"institute-backend/models/course"
)

// Batch is a scheduled offering of a course: a time slot plus a start
// date that students can be assigned to.
type Batch struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// Foreign key for course relationship
	CourseID uint          `gorm:"not null;index" json:"course_id"`
	Course   course.Course `gorm:"foreignKey:CourseID" json:"course"`

	TimeSlot  string    `gorm:"type:varchar(100)" json:"time_slot"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
