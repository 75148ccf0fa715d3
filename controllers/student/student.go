package student

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institute-backend/logger"
	"institute-backend/middleware"
	studentModel "institute-backend/models/student"
	"institute-backend/types"
	"institute-backend/utils"
)

type StudentController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewStudentController(db *gorm.DB, async_logger *logger.AsyncLogger) *StudentController {
	return &StudentController{db: db, loggerInstance: async_logger}
}

// Index lists students for administrators. Supports ?search= over name
// and email, and ?active=true|false.
func (h *StudentController) Index(c *fiber.Ctx) error {
	query := h.db.Model(&studentModel.Student{})

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		like := "%" + term + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			like, like, like, like)
	}

	switch c.Query("active") {
	case "true":
		query = query.Where("is_active = ?", true)
	case "false":
		query = query.Where("is_active = ?", false)
	}

	var students []studentModel.Student
	if err := query.Order("created_at DESC").Find(&students).Error; err != nil {
		logger.Error("Failed to list students", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list students",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Students retrieved",
		Status:  fiber.StatusOK,
		Data:    students,
	})
}

// Show returns one student.
func (h *StudentController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid student id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var record studentModel.Student
	if err := h.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Student not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load student", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load student",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Student retrieved",
		Status:  fiber.StatusOK,
		Data:    record,
	})
}

// Activate approves a pending account so the student can log in.
func (h *StudentController) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

// Deactivate suspends an account. Existing sessions keep working until
// they expire; new logins are refused.
func (h *StudentController) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *StudentController) setActive(c *fiber.Ctx, active bool) error {
	identity, _ := middleware.CurrentIdentity(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid student id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var record studentModel.Student
	if err := h.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Student not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load student", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load student",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.db.Model(&record).Update("is_active", active).Error; err != nil {
		logger.Error("Failed to update student activation", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update student",
			Status:  fiber.StatusInternalServerError,
		})
	}
	record.IsActive = active

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	action := "deactivated"
	if active {
		action = "activated"
	}
	logger.Success(fmt.Sprintf("Student %d %s by admin:%d", record.ID, action, identity.ID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Student " + action,
		Status:  fiber.StatusOK,
		Data:    record,
	})
}
