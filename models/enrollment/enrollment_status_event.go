package enrollment

import (
	"time"
)

// EnrollmentStatusEvent records each status an enrollment has carried
// and who set it. One row is written per transition, including the
// initial pending state.
type EnrollmentStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for enrollment relationship
	EnrollmentID uint       `gorm:"not null;index" json:"enrollment_id"`
	Enrollment   Enrollment `gorm:"foreignKey:EnrollmentID" json:"enrollment"`

	Status    Status    `gorm:"size:20;not null" json:"status"`
	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the EnrollmentStatusEvent model
func (EnrollmentStatusEvent) TableName() string {
	return "enrollment_status_events"
}
