package enrollment

import (
	"time"

	"institute-backend/models/batch"
	"institute-backend/models/course"
	"institute-backend/models/student"
)

// Enrollment ties one student to one course, optionally pinned to a
// batch. Created as pending by the student-facing API; staff move it
// through the rest of the lifecycle. A partial unique index on
// (student_id, course_id) over live statuses backs the application-level
// duplicate check.
type Enrollment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for student relationship
	StudentID uint            `gorm:"not null;index" json:"student_id"`
	Student   student.Student `gorm:"foreignKey:StudentID" json:"student"`

	// Foreign key for course relationship
	CourseID uint          `gorm:"not null;index" json:"course_id"`
	Course   course.Course `gorm:"foreignKey:CourseID" json:"course"`

	// Optional batch assignment
	BatchID *uint        `gorm:"index" json:"batch_id,omitempty"`
	Batch   *batch.Batch `gorm:"foreignKey:BatchID" json:"batch,omitempty"`

	EnrollmentDate time.Time  `gorm:"autoCreateTime" json:"enrollment_date"`
	StartDate      *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate        *time.Time `gorm:"type:date" json:"end_date,omitempty"`

	Status Status `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	PaymentStatus string  `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	AmountPaid    float64 `gorm:"type:decimal(10,2);default:0" json:"amount_paid"`

	// 0-100, monotonic by convention only
	ProgressPercentage int `gorm:"default:0" json:"progress_percentage"`

	Remarks string `gorm:"type:text" json:"remarks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
