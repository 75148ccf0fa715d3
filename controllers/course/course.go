package course

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"institute-backend/logger"
	batchModel "institute-backend/models/batch"
	categoryModel "institute-backend/models/category"
	courseModel "institute-backend/models/course"
	"institute-backend/types"
)

type CourseController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewCourseController(db *gorm.DB, async_logger *logger.AsyncLogger) *CourseController {
	return &CourseController{db: db, loggerInstance: async_logger}
}

// Index lists active courses. Supports ?category=<id>,
// ?category_slug=<slug>, ?is_featured=true, ?enrollment_open=true|false,
// ?search=<term> and ?ordering=name|fees|-fees.
func (h *CourseController) Index(c *fiber.Ctx) error {
	query := h.db.Model(&courseModel.Course{}).
		Preload("Category").
		Where("courses.is_active = ?", true)

	if categoryID := c.QueryInt("category"); categoryID > 0 {
		query = query.Where("courses.category_id = ?", categoryID)
	}

	if slug := c.Query("category_slug"); slug != "" {
		query = query.Joins("JOIN course_categories ON course_categories.id = courses.category_id").
			Where("course_categories.slug = ?", slug)
	}

	if c.Query("is_featured") == "true" {
		query = query.Where("courses.is_featured = ?", true)
	}

	switch c.Query("enrollment_open") {
	case "true":
		query = query.Where("courses.enrollment_open = ?", true)
	case "false":
		query = query.Where("courses.enrollment_open = ?", false)
	}

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		like := "%" + term + "%"
		query = query.Where("courses.name ILIKE ? OR courses.code ILIKE ? OR courses.description ILIKE ?",
			like, like, like)
	}

	switch c.Query("ordering") {
	case "name":
		query = query.Order("courses.name ASC")
	case "fees":
		query = query.Order("courses.fees ASC")
	case "-fees":
		query = query.Order("courses.fees DESC")
	default:
		query = query.Order("courses.id ASC")
	}

	var courses []courseModel.Course
	if err := query.Find(&courses).Error; err != nil {
		logger.Error("Failed to list courses", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list courses",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Courses retrieved",
		Status:  fiber.StatusOK,
		Data:    courses,
	})
}

// Featured lists the courses flagged for the landing page.
func (h *CourseController) Featured(c *fiber.Ctx) error {
	var courses []courseModel.Course
	err := h.db.Preload("Category").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		logger.Error("Failed to list featured courses", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list featured courses",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Featured courses retrieved",
		Status:  fiber.StatusOK,
		Data:    courses,
	})
}

// ByCategory lists active courses under a category slug.
func (h *CourseController) ByCategory(c *fiber.Ctx) error {
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
	err := h.db.Preload("Category").
		Where("category_id = ? AND is_active = ?", category.ID, true).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		logger.Error("Failed to list courses for category", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list courses",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Courses retrieved",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"category": category,
			"courses":  courses,
		},
	})
}

// Show returns a single active course with its category.
func (h *CourseController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid course id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var course courseModel.Course
	err = h.db.Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Course not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load course", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load course",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Course retrieved",
		Status:  fiber.StatusOK,
		Data:    course,
	})
}

// Batches lists active batches for a course. ?upcoming=true keeps only
// batches starting today or later.
func (h *CourseController) Batches(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid course id",
			Status:  fiber.StatusBadRequest,
		})
	}

	query := h.db.Where("course_id = ? AND is_active = ?", id, true)
	if c.Query("upcoming") == "true" {
		query = query.Where("start_date >= ?", now.BeginningOfDay())
	}

	var batches []batchModel.Batch
	if err := query.Order("start_date ASC").Find(&batches).Error; err != nil {
		logger.Error("Failed to list batches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list batches",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Batches retrieved",
		Status:  fiber.StatusOK,
		Data:    batches,
	})
}

// AllBatches lists active batches across every course, soonest first.
// ?upcoming=true keeps only batches starting today or later.
func (h *CourseController) AllBatches(c *fiber.Ctx) error {
	query := h.db.Preload("Course").Where("is_active = ?", true)
	if c.Query("upcoming") == "true" {
		query = query.Where("start_date >= ?", now.BeginningOfDay())
	}

	var batches []batchModel.Batch
	if err := query.Order("start_date ASC").Find(&batches).Error; err != nil {
		logger.Error("Failed to list batches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list batches",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Batches retrieved",
		Status:  fiber.StatusOK,
		Data:    batches,
	})
}
