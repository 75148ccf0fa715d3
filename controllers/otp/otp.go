package otp

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institute-backend/logger"
	otpService "institute-backend/services/otp"
	"institute-backend/types"
	otpTypes "institute-backend/types/otp"
	"institute-backend/utils"
)

type OTPController struct {
	db             *gorm.DB
	service        *otpService.Service
	loggerInstance *logger.AsyncLogger
}

func NewOTPController(db *gorm.DB, service *otpService.Service, async_logger *logger.AsyncLogger) *OTPController {
	return &OTPController{db: db, service: service, loggerInstance: async_logger}
}

// RequestOTP mails a password reset code to a registered address.
func (h *OTPController) RequestOTP(c *fiber.Ctx) error {
	var req otpTypes.RequestOTPRequest
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

	record, err := h.service.RequestOTP(utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, otpService.ErrUnknownEmail) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "No account found for this email",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to create OTP", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to send verification code",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Verification code sent",
		Status:  fiber.StatusOK,
		Data: otpTypes.OTPResponse{
			Message:   "Verification code sent",
			ExpiresAt: record.ExpiresAt.Format("2006-01-02 15:04:05"),
			Success:   true,
		},
	})
}

// VerifyOTP checks a mailed code without consuming it.
func (h *OTPController) VerifyOTP(c *fiber.Ctx) error {
	var req otpTypes.VerifyOTPRequest
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

	err := h.service.VerifyOTP(utils.NormalizeEmail(req.Email), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, otpService.ErrInvalidCode):
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Invalid verification code",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, otpService.ErrExpiredCode):
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Verification code has expired",
				Status:  fiber.StatusBadRequest,
			})
		default:
			logger.Error("Failed to verify OTP", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Failed to verify code",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Code verified",
		Status:  fiber.StatusOK,
		Data:    otpTypes.OTPResponse{Message: "Code verified", Success: true},
	})
}

// ResetPassword finishes the forgot-password flow.
func (h *OTPController) ResetPassword(c *fiber.Ctx) error {
	var req otpTypes.ResetPasswordRequest
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

	err := h.service.ResetPassword(utils.NormalizeEmail(req.Email), req.Code, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, otpService.ErrNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Code has not been verified",
				Status:  fiber.StatusForbidden,
			})
		case errors.Is(err, otpService.ErrWindowExpired):
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Verification window has expired, request a new code",
				Status:  fiber.StatusForbidden,
			})
		case errors.Is(err, otpService.ErrUnknownEmail):
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "No account found for this email",
				Status:  fiber.StatusNotFound,
			})
		default:
			logger.Error("Failed to reset password", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Failed to reset password",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("Password reset for " + req.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password has been reset",
		Status:  fiber.StatusOK,
	})
}
