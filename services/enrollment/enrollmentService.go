package enrollment

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	batchModel "institute-backend/models/batch"
	courseModel "institute-backend/models/course"
	enrollmentModel "institute-backend/models/enrollment"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseClosed       = errors.New("course is not open for enrollment")
	ErrBatchNotFound      = errors.New("batch not found for this course")
	ErrAlreadyEnrolled    = errors.New("an active enrollment already exists for this course")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// Service owns enrollment creation and the status workflow. Every
// status change writes an audit event in the same transaction.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create enrolls a student into a course. A partial unique index over
// live statuses backstops the duplicate check under concurrency.
func (s *Service) Create(studentID, courseID uint, batchID *uint) (*enrollmentModel.Enrollment, error) {
	var course courseModel.Course
	if err := s.db.Where("id = ? AND is_active = ?", courseID, true).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to load course: %v", err)
	}
	if !course.EnrollmentOpen {
		return nil, ErrCourseClosed
	}

	if batchID != nil {
		var batch batchModel.Batch
		err := s.db.Where("id = ? AND course_id = ?", *batchID, courseID).First(&batch).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBatchNotFound
			}
			return nil, fmt.Errorf("failed to load batch: %v", err)
		}
	}

	var live int64
	err := s.db.Model(&enrollmentModel.Enrollment{}).
		Where("student_id = ? AND course_id = ? AND status IN ?",
			studentID, courseID, []enrollmentModel.Status{enrollmentModel.StatusPending, enrollmentModel.StatusApproved}).
		Count(&live).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check existing enrollments: %v", err)
	}
	if live > 0 {
		return nil, ErrAlreadyEnrolled
	}

	record := enrollmentModel.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		BatchID:   batchID,
		Status:    enrollmentModel.StatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		event := enrollmentModel.EnrollmentStatusEvent{
			EnrollmentID: record.ID,
			Status:       enrollmentModel.StatusPending,
			CreatedBy:    fmt.Sprintf("student:%d", studentID),
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("failed to create enrollment: %v", err)
	}

	return &record, nil
}

// Transition moves an enrollment to the given status and records who
// asked for it. Any valid status may follow any other; the audit trail
// is the source of truth for the history.
func (s *Service) Transition(enrollmentID uint, status enrollmentModel.Status, remarks, actor string) (*enrollmentModel.Enrollment, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("status %q is not a valid enrollment status", status)
	}

	var record enrollmentModel.Enrollment
	if err := s.db.First(&record, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to load enrollment: %v", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": status}
		if remarks != "" {
			updates["remarks"] = remarks
		}
		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update enrollment status: %v", err)
		}
		event := enrollmentModel.EnrollmentStatusEvent{
			EnrollmentID: record.ID,
			Status:       status,
			CreatedBy:    actor,
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to record status event: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	record.Status = status
	if remarks != "" {
		record.Remarks = remarks
	}
	return &record, nil
}

// ListByStudent returns a student's enrollments newest first with the
// course and batch preloaded.
func (s *Service) ListByStudent(studentID uint) ([]enrollmentModel.Enrollment, error) {
	var records []enrollmentModel.Enrollment
	err := s.db.
		Preload("Course").
		Preload("Course.Category").
		Preload("Batch").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %v", err)
	}
	return records, nil
}

// History returns the audit trail for one enrollment, oldest first.
func (s *Service) History(enrollmentID uint) ([]enrollmentModel.EnrollmentStatusEvent, error) {
	var events []enrollmentModel.EnrollmentStatusEvent
	err := s.db.
		Where("enrollment_id = ?", enrollmentID).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %v", err)
	}
	return events, nil
}
