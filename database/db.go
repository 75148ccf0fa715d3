package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"institute-backend/logger"
	"institute-backend/models/admin"
	"institute-backend/models/batch"
	"institute-backend/models/category"
	"institute-backend/models/contact"
	"institute-backend/models/course"
	"institute-backend/models/enrollment"
	"institute-backend/models/institute"
	"institute-backend/models/log"
	"institute-backend/models/offer"
	"institute-backend/models/otp"
	"institute-backend/models/student"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models
func autoMigrate() error {
	// Stage 1: models without foreign keys
	stage1Models := []interface{}{
		&student.Student{},
		&admin.Administrator{},
		&category.CourseCategory{},
		&institute.InstituteProfile{},
		&offer.SeasonalOffer{},
		&contact.ContactMessage{},
		&otp.OTPVerification{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models depending on Stage 1
	stage2Models := []interface{}{
		&course.Course{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: models depending on Stage 2
	stage3Models := []interface{}{
		&batch.Batch{},
		&enrollment.Enrollment{},
		&enrollment.EnrollmentStatusEvent{},
	}

	for _, model := range stage3Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Remaining models
	remainingModels := []interface{}{
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// Student indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_students_email ON students(email)").Error; err != nil {
		return fmt.Errorf("failed to create student email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_students_is_active ON students(is_active)").Error; err != nil {
		return fmt.Errorf("failed to create student is_active index: %w", err)
	}

	// Course indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_courses_category_id ON courses(category_id)").Error; err != nil {
		return fmt.Errorf("failed to create course category_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_courses_is_featured ON courses(is_featured)").Error; err != nil {
		return fmt.Errorf("failed to create course is_featured index: %w", err)
	}

	// Batch indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_batches_course_id ON batches(course_id)").Error; err != nil {
		return fmt.Errorf("failed to create batch course_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_batches_start_date ON batches(start_date)").Error; err != nil {
		return fmt.Errorf("failed to create batch start_date index: %w", err)
	}

	// Enrollment indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_enrollments_student_id ON enrollments(student_id)").Error; err != nil {
		return fmt.Errorf("failed to create enrollment student_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_enrollments_course_id ON enrollments(course_id)").Error; err != nil {
		return fmt.Errorf("failed to create enrollment course_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_enrollments_status ON enrollments(status)").Error; err != nil {
		return fmt.Errorf("failed to create enrollment status index: %w", err)
	}
	// One live enrollment per student and course. Rejected, completed
	// and cancelled rows stay behind without blocking re-enrollment.
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_enrollments_student_course_live
		ON enrollments(student_id, course_id)
		WHERE status IN ('pending', 'approved')`).Error; err != nil {
		return fmt.Errorf("failed to create live enrollment unique index: %w", err)
	}

	// OTP indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_otp_verifications_email_code ON otp_verifications(email, code)").Error; err != nil {
		return fmt.Errorf("failed to create otp email_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_otp_verifications_expires_at ON otp_verifications(expires_at)").Error; err != nil {
		return fmt.Errorf("failed to create otp expires_at index: %w", err)
	}

	// Contact message indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_contact_messages_is_read ON contact_messages(is_read)").Error; err != nil {
		return fmt.Errorf("failed to create contact is_read index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_courses_category",
			sql: `ALTER TABLE courses ADD CONSTRAINT fk_courses_category
				  FOREIGN KEY (category_id) REFERENCES course_categories(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_batches_course",
			sql: `ALTER TABLE batches ADD CONSTRAINT fk_batches_course
				  FOREIGN KEY (course_id) REFERENCES courses(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_enrollments_student",
			sql: `ALTER TABLE enrollments ADD CONSTRAINT fk_enrollments_student
				  FOREIGN KEY (student_id) REFERENCES students(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_enrollments_course",
			sql: `ALTER TABLE enrollments ADD CONSTRAINT fk_enrollments_course
				  FOREIGN KEY (course_id) REFERENCES courses(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_enrollment_status_events_enrollment",
			sql: `ALTER TABLE enrollment_status_events ADD CONSTRAINT fk_enrollment_status_events_enrollment
				  FOREIGN KEY (enrollment_id) REFERENCES enrollments(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
