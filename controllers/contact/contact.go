package contact

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institute-backend/logger"
	contactModel "institute-backend/models/contact"
	"institute-backend/types"
	contactTypes "institute-backend/types/contact"
	"institute-backend/utils"
)

type ContactController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewContactController(db *gorm.DB, async_logger *logger.AsyncLogger) *ContactController {
	return &ContactController{db: db, loggerInstance: async_logger}
}

// Store accepts a public contact-form submission.
func (h *ContactController) Store(c *fiber.Ctx) error {
	var req contactTypes.CreateRequest
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

	record := contactModel.ContactMessage{
		Name:    req.Name,
		Email:   utils.NormalizeEmail(req.Email),
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.db.Create(&record).Error; err != nil {
		logger.Error("Failed to store contact message", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to submit message",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Message received. We will get back to you soon.",
		Status:  fiber.StatusCreated,
		Data:    record,
	})
}

// Index lists messages for administrators, unread first.
// ?unread=true keeps only unread ones.
func (h *ContactController) Index(c *fiber.Ctx) error {
	query := h.db.Model(&contactModel.ContactMessage{})
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var messages []contactModel.ContactMessage
	if err := query.Order("is_read ASC, created_at DESC").Find(&messages).Error; err != nil {
		logger.Error("Failed to list contact messages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list messages",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Messages retrieved",
		Status:  fiber.StatusOK,
		Data:    messages,
	})
}

// MarkRead flags a message as handled.
func (h *ContactController) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid message id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var record contactModel.ContactMessage
	if err := h.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Message not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load contact message", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load message",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.db.Model(&record).Update("is_read", true).Error; err != nil {
		logger.Error("Failed to mark message read", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update message",
			Status:  fiber.StatusInternalServerError,
		})
	}
	record.IsRead = true

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Message marked as read",
		Status:  fiber.StatusOK,
		Data:    record,
	})
}
