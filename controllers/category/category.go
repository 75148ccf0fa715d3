package category

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institute-backend/logger"
	categoryModel "institute-backend/models/category"
	courseModel "institute-backend/models/course"
	"institute-backend/types"
)

type CategoryController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewCategoryController(db *gorm.DB, async_logger *logger.AsyncLogger) *CategoryController {
	return &CategoryController{db: db, loggerInstance: async_logger}
}

type categoryWithCount struct {
	categoryModel.CourseCategory
	CourseCount int64 `json:"course_count"`
}

// Index lists every category in display order with its active course
// count.
func (h *CategoryController) Index(c *fiber.Ctx) error {
	var categories []categoryModel.CourseCategory
	err := h.db.Order("display_order ASC, name ASC").Find(&categories).Error
	if err != nil {
		logger.Error("Failed to list categories", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list categories",
			Status:  fiber.StatusInternalServerError,
		})
	}

	type countRow struct {
		CategoryID uint
		Count      int64
	}
	var counts []countRow
	err = h.db.Model(&courseModel.Course{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		logger.Error("Failed to count courses per category", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list categories",
			Status:  fiber.StatusInternalServerError,
		})
	}

	countByCategory := make(map[uint]int64, len(counts))
	for _, row := range counts {
		countByCategory[row.CategoryID] = row.Count
	}

	result := make([]categoryWithCount, 0, len(categories))
	for _, cat := range categories {
		result = append(result, categoryWithCount{
			CourseCategory: cat,
			CourseCount:    countByCategory[cat.ID],
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Categories retrieved",
		Status:  fiber.StatusOK,
		Data:    result,
	})
}

// Show returns one category by slug with its active courses.
func (h *CategoryController) Show(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var category categoryModel.CourseCategory
	if err := h.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Category not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load category", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load category",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var courses []courseModel.Course
	err := h.db.Where("category_id = ? AND is_active = ?", category.ID, true).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		logger.Error("Failed to list courses for category", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load category",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Category retrieved",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"category": category,
			"courses":  courses,
		},
	})
}
