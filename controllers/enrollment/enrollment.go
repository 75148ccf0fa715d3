package enrollment

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institute-backend/logger"
	"institute-backend/middleware"
	enrollmentModel "institute-backend/models/enrollment"
	enrollmentService "institute-backend/services/enrollment"
	"institute-backend/types"
	enrollmentTypes "institute-backend/types/enrollment"
	"institute-backend/utils"
)

type EnrollmentController struct {
	db             *gorm.DB
	service        *enrollmentService.Service
	loggerInstance *logger.AsyncLogger
}

func NewEnrollmentController(db *gorm.DB, service *enrollmentService.Service, async_logger *logger.AsyncLogger) *EnrollmentController {
	return &EnrollmentController{db: db, service: service, loggerInstance: async_logger}
}

// Store enrolls the logged-in student into a course.
func (h *EnrollmentController) Store(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req enrollmentTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	record, err := h.service.Create(identity.ID, req.CourseID, req.BatchID)
	if err != nil {
		switch {
		case errors.Is(err, enrollmentService.ErrCourseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Course not found",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, enrollmentService.ErrCourseClosed):
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "This course is not open for enrollment",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, enrollmentService.ErrBatchNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Batch not found for this course",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, enrollmentService.ErrAlreadyEnrolled):
			return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
				Message: "You already have an active enrollment for this course",
				Status:  fiber.StatusConflict,
			})
		default:
			logger.Error("Failed to create enrollment", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Failed to create enrollment",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success(fmt.Sprintf("Student %d enrolled in course %d", identity.ID, req.CourseID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Enrollment submitted and pending approval",
		Status:  fiber.StatusCreated,
		Data:    record,
	})
}

// ByStudent lists the logged-in student's own enrollments.
func (h *EnrollmentController) ByStudent(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	records, err := h.service.ListByStudent(identity.ID)
	if err != nil {
		logger.Error("Failed to list enrollments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list enrollments",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Enrollments retrieved",
		Status:  fiber.StatusOK,
		Data:    records,
	})
}

// Index lists all enrollments for administrators. Supports ?status=,
// ?course_id=, ?student_id= and ?payment_status= filters plus
// ?ordering=enrollment_date|-enrollment_date.
func (h *EnrollmentController) Index(c *fiber.Ctx) error {
	query := h.db.Model(&enrollmentModel.Enrollment{}).
		Preload("Student").
		Preload("Course").
		Preload("Batch")

	if status := c.Query("status"); status != "" {
		if !enrollmentModel.Status(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: fmt.Sprintf("status %q is not a valid enrollment status", status),
				Status:  fiber.StatusBadRequest,
			})
		}
		query = query.Where("status = ?", status)
	}

	if courseID := c.QueryInt("course_id"); courseID > 0 {
		query = query.Where("course_id = ?", courseID)
	}

	if studentID := c.QueryInt("student_id"); studentID > 0 {
		query = query.Where("student_id = ?", studentID)
	}

	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	switch c.Query("ordering") {
	case "enrollment_date":
		query = query.Order("enrollment_date ASC")
	case "-enrollment_date":
		query = query.Order("enrollment_date DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var records []enrollmentModel.Enrollment
	if err := query.Find(&records).Error; err != nil {
		logger.Error("Failed to list enrollments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list enrollments",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Enrollments retrieved",
		Status:  fiber.StatusOK,
		Data:    records,
	})
}

// UpdateStatus moves an enrollment through the workflow.
func (h *EnrollmentController) UpdateStatus(c *fiber.Ctx) error {
	identity, _ := middleware.CurrentIdentity(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid enrollment id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req enrollmentTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	actor := fmt.Sprintf("admin:%d", identity.ID)
	record, err := h.service.Transition(uint(id), enrollmentModel.Status(req.Status), req.Remarks, actor)
	if err != nil {
		if errors.Is(err, enrollmentService.ErrEnrollmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Enrollment not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to update enrollment status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update enrollment status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success(fmt.Sprintf("Enrollment %d moved to %s by %s", record.ID, record.Status, actor))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Enrollment status updated",
		Status:  fiber.StatusOK,
		Data:    record,
	})
}

// Update edits the bookkeeping fields of an enrollment.
func (h *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid enrollment id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req enrollmentTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var record enrollmentModel.Enrollment
	if err := h.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Enrollment not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load enrollment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load enrollment",
			Status:  fiber.StatusInternalServerError,
		})
	}

	updates := map[string]interface{}{}
	if req.BatchID != nil {
		updates["batch_id"] = *req.BatchID
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: err.Error(),
				Status:  fiber.StatusBadRequest,
			})
		}
		updates["start_date"] = start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: err.Error(),
				Status:  fiber.StatusBadRequest,
			})
		}
		updates["end_date"] = end
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if req.AmountPaid != nil {
		updates["amount_paid"] = *req.AmountPaid
	}
	if req.ProgressPercentage != nil {
		updates["progress_percentage"] = *req.ProgressPercentage
	}
	if req.Remarks != nil {
		updates["remarks"] = *req.Remarks
	}

	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "No fields to update",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := h.db.Model(&record).Updates(updates).Error; err != nil {
		logger.Error("Failed to update enrollment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update enrollment",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Enrollment updated",
		Status:  fiber.StatusOK,
		Data:    record,
	})
}

// History returns the status audit trail for an enrollment.
func (h *EnrollmentController) History(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid enrollment id",
			Status:  fiber.StatusBadRequest,
		})
	}

	events, err := h.service.History(uint(id))
	if err != nil {
		logger.Error("Failed to load enrollment history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load enrollment history",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "History retrieved",
		Status:  fiber.StatusOK,
		Data:    events,
	})
}
