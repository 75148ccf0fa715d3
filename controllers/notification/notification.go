package notification

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationService "institute-backend/httpServices/notification"
	"institute-backend/logger"
	studentModel "institute-backend/models/student"
	"institute-backend/types"
	notificationTypes "institute-backend/types/notification"
	"institute-backend/utils"
)

type NotificationController struct {
	db             *gorm.DB
	notifier       *notificationService.Service
	loggerInstance *logger.AsyncLogger
}

func NewNotificationController(db *gorm.DB, notifier *notificationService.Service, async_logger *logger.AsyncLogger) *NotificationController {
	return &NotificationController{db: db, notifier: notifier, loggerInstance: async_logger}
}

// BulkEmail sends an announcement to an explicit recipient list, or to
// every active student when the list is empty.
func (h *NotificationController) BulkEmail(c *fiber.Ctx) error {
	var req notificationTypes.BulkEmailRequest
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

	recipients := req.Recipients
	if len(recipients) == 0 {
		var emails []string
		err := h.db.Model(&studentModel.Student{}).
			Where("is_active = ?", true).
			Pluck("email", &emails).Error
		if err != nil {
			logger.Error("Failed to load recipient list", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Failed to load recipient list",
				Status:  fiber.StatusInternalServerError,
			})
		}
		recipients = emails
	}

	if len(recipients) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "No recipients to send to",
			Status:  fiber.StatusBadRequest,
		})
	}

	failed, err := h.notifier.SendBulkEmail(recipients, req.Subject, req.Body)
	if err != nil {
		logger.Error("Bulk email delivery failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Bulk email delivery failed",
			Status:  fiber.StatusInternalServerError,
			Data: fiber.Map{
				"requested": len(recipients),
				"failed":    failed,
			},
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success(fmt.Sprintf("Bulk email sent to %d recipients", len(recipients)))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: fmt.Sprintf("Email sent to %d recipients", len(recipients)),
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"sent": len(recipients),
		},
	})
}
