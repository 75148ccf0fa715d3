package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institute-backend/constants"
	"institute-backend/logger"
	"institute-backend/middleware"
	adminModel "institute-backend/models/admin"
	studentModel "institute-backend/models/student"
	"institute-backend/services/session"
	"institute-backend/types"
	authTypes "institute-backend/types/auth"
	"institute-backend/utils"
)

type AuthController struct {
	db             *gorm.DB
	sessions       *session.Manager
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, sessions *session.Manager, async_logger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, sessions: sessions, loggerInstance: async_logger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a student account awaiting activation by an
// administrator.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error("Registration validation failed", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	newStudent := studentModel.Student{
		Uuid:      uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     utils.NormalizeEmail(req.Email),
		Phone:     req.Phone,
		Address:   req.Address,
		IsActive:  false,
	}

	if req.DateOfBirth != "" {
		dob, err := utils.ParseDate(req.DateOfBirth)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: err.Error(),
				Status:  fiber.StatusBadRequest,
			})
		}
		newStudent.DateOfBirth = &dob
	}

	if err := newStudent.SetPassword(req.Password); err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.db.Create(&newStudent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
				Message: "An account with this email already exists",
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to create student", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("Student registered: " + newStudent.Email)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful. Your account is pending approval.",
		Status:  fiber.StatusCreated,
		Data:    newStudent,
	})
}

// Login authenticates against the student table first, then falls back
// to administrators so staff can use the same form.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
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

	email := utils.NormalizeEmail(req.Email)

	var student studentModel.Student
	err := h.db.Where("email = ?", email).First(&student).Error
	if err == nil {
		if !student.CheckPassword(req.Password) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if !student.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Your account has not been activated yet",
				Status:  fiber.StatusForbidden,
			})
		}
		return h.issueSession(c, session.Identity{
			Kind:  session.KindStudent,
			ID:    student.ID,
			Email: student.Email,
		}, student)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to look up student", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Login failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var admin adminModel.Administrator
	err = h.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Failed to look up administrator", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Login failed",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if !admin.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid email or password",
			Status:  fiber.StatusUnauthorized,
		})
	}

	return h.issueSession(c, session.Identity{
		Kind:  session.KindAdmin,
		ID:    admin.ID,
		Email: admin.Email,
	}, fiber.Map{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  constants.RoleAdmin,
	})
}

func (h *AuthController) issueSession(c *fiber.Ctx, identity session.Identity, payload interface{}) error {
	token, err := h.sessions.Issue(identity)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Login failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, constants.SessionCookie, token, int(h.sessions.TTL().Seconds()))

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success(fmt.Sprintf("%s logged in as %s at %s", identity.Email, identity.Kind, currentTime))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    payload,
	})
}

// Logout clears the session cookie. Calling it without a session is
// fine.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	h.setSecureCookie(c, constants.SessionCookie, "", -1)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged out",
		Status:  fiber.StatusOK,
	})
}

// Me reports the current session. An absent or stale session is not an
// error; the frontend polls this endpoint on every page load.
func (h *AuthController) Me(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.Status(fiber.StatusOK).JSON(authTypes.MeResponse{IsAuthenticated: false, Student: nil})
	}

	if identity.IsAdmin() {
		return c.Status(fiber.StatusOK).JSON(authTypes.MeResponse{
			IsAuthenticated: true,
			Student: fiber.Map{
				"id":    identity.ID,
				"name":  constants.AdminDisplayName,
				"email": identity.Email,
				"role":  constants.RoleAdmin,
			},
		})
	}

	var student studentModel.Student
	if err := h.db.First(&student, identity.ID).Error; err != nil {
		// The account may have been removed since the token was issued;
		// drop the stale cookie along with the session.
		h.setSecureCookie(c, constants.SessionCookie, "", -1)
		return c.Status(fiber.StatusOK).JSON(authTypes.MeResponse{IsAuthenticated: false, Student: nil})
	}

	return c.Status(fiber.StatusOK).JSON(authTypes.MeResponse{
		IsAuthenticated: true,
		Student:         student,
	})
}
