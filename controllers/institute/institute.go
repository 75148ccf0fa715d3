package institute

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institute-backend/logger"
	instituteModel "institute-backend/models/institute"
	"institute-backend/types"
)

type InstituteController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewInstituteController(db *gorm.DB, async_logger *logger.AsyncLogger) *InstituteController {
	return &InstituteController{db: db, loggerInstance: async_logger}
}

// Current returns the institute profile used on the public site. The
// table holds a single row maintained through seeding.
func (h *InstituteController) Current(c *fiber.Ctx) error {
	var profile instituteModel.InstituteProfile
	if err := h.db.Order("id ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Institute profile not configured",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load institute profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load institute profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Institute profile retrieved",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"profile":             profile,
			"years_of_experience": profile.YearsOfExperience(time.Now().Year()),
		},
	})
}
