package offer

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institute-backend/logger"
	offerModel "institute-backend/models/offer"
	"institute-backend/types"
)

type OfferController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewOfferController(db *gorm.DB, async_logger *logger.AsyncLogger) *OfferController {
	return &OfferController{db: db, loggerInstance: async_logger}
}

// Index lists active promotional banners, highest priority first.
func (h *OfferController) Index(c *fiber.Ctx) error {
	var offers []offerModel.SeasonalOffer
	err := h.db.Where("is_active = ?", true).
		Order("priority DESC, created_at DESC").
		Find(&offers).Error
	if err != nil {
		logger.Error("Failed to list offers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list offers",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Offers retrieved",
		Status:  fiber.StatusOK,
		Data:    offers,
	})
}
