package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"institute-backend/httpServices/notification"
	"institute-backend/logger"
	otpModel "institute-backend/models/otp"
	studentModel "institute-backend/models/student"
)

const (
	codeLength = 6
	// codeTTL bounds how long a mailed code stays valid.
	codeTTL = 10 * time.Minute
	// resetWindow bounds how long after verification the password reset
	// may still be completed.
	resetWindow = 15 * time.Minute
)

var (
	ErrUnknownEmail  = errors.New("no account found for this email")
	ErrInvalidCode   = errors.New("invalid verification code")
	ErrExpiredCode   = errors.New("verification code has expired")
	ErrNotVerified   = errors.New("code has not been verified")
	ErrWindowExpired = errors.New("verification window has expired")
)

// Service owns the OTP lifecycle for the forgot-password flow.
type Service struct {
	db       *gorm.DB
	notifier *notification.Service
}

func NewService(db *gorm.DB, notifier *notification.Service) *Service {
	return &Service{db: db, notifier: notifier}
}

// GenerateCode produces a random numeric code of codeLength digits.
func GenerateCode() (string, error) {
	code := ""
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate verification code: %v", err)
		}
		code += n.String()
	}
	return code, nil
}

// RequestOTP creates and stores a fresh code for a registered student
// and mails it. Earlier unexpired codes for the same address stay
// valid until they expire on their own.
func (s *Service) RequestOTP(email string) (*otpModel.OTPVerification, error) {
	var student studentModel.Student
	if err := s.db.Where("email = ?", email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to look up student: %v", err)
	}

	code, err := GenerateCode()
	if err != nil {
		return nil, err
	}

	record := otpModel.OTPVerification{
		Email:     email,
		Code:      code,
		Purpose:   otpModel.PurposePasswordReset,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store verification code: %v", err)
	}

	// Delivery is best effort. The code is already persisted, so a mail
	// outage must not fail the request.
	if s.notifier != nil {
		subject := "Your password reset code"
		body := fmt.Sprintf("Hello %s,\n\nYour password reset code is %s. It expires in %d minutes.\n\nIf you did not request this, you can ignore this email.",
			student.FirstName, code, int(codeTTL.Minutes()))
		if err := s.notifier.SendEmail(email, subject, body); err != nil {
			logger.Warning(fmt.Sprintf("Failed to email OTP to %s: %v", email, err))
		}
		if student.Phone != "" {
			msg := fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.", code, int(codeTTL.Minutes()))
			if err := s.notifier.SendChatMessage(student.Phone, msg); err != nil {
				logger.Warning(fmt.Sprintf("Failed to send OTP chat message to %s: %v", student.Phone, err))
			}
		}
	}

	return &record, nil
}

// VerifyOTP marks the newest matching usable code as verified. A code
// that was already consumed by an earlier verify does not match again.
func (s *Service) VerifyOTP(email, code string) error {
	var record otpModel.OTPVerification
	err := s.db.
		Where("email = ? AND code = ? AND purpose = ? AND is_verified = ?",
			email, code, otpModel.PurposePasswordReset, false).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("failed to look up verification code: %v", err)
	}

	if !record.IsUsable() {
		if record.IsExpired() {
			return ErrExpiredCode
		}
		return ErrInvalidCode
	}

	if err := s.db.Model(&record).Update("is_verified", true).Error; err != nil {
		return fmt.Errorf("failed to mark code verified: %v", err)
	}
	return nil
}

// ResetPassword sets a new password once a code for the email has been
// verified recently, then discards every outstanding code for the
// address.
func (s *Service) ResetPassword(email, code, newPassword string) error {
	var record otpModel.OTPVerification
	err := s.db.
		Where("email = ? AND code = ? AND purpose = ? AND is_verified = ?",
			email, code, otpModel.PurposePasswordReset, true).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotVerified
		}
		return fmt.Errorf("failed to look up verification code: %v", err)
	}

	if !record.WithinResetWindow(resetWindow) {
		return ErrWindowExpired
	}

	var student studentModel.Student
	if err := s.db.Where("email = ?", email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownEmail
		}
		return fmt.Errorf("failed to look up student: %v", err)
	}

	if err := student.SetPassword(newPassword); err != nil {
		return fmt.Errorf("failed to hash new password: %v", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&studentModel.Student{}).
			Where("id = ?", student.ID).
			Update("password", student.Password).Error; err != nil {
			return fmt.Errorf("failed to update password: %v", err)
		}
		if err := tx.Where("email = ?", email).
			Delete(&otpModel.OTPVerification{}).Error; err != nil {
			return fmt.Errorf("failed to clear verification codes: %v", err)
		}
		return nil
	})
}

// CleanupExpired removes codes past their expiry.
func (s *Service) CleanupExpired() (int64, error) {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&otpModel.OTPVerification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clean up expired codes: %v", result.Error)
	}
	return result.RowsAffected, nil
}

// StartCleanupScheduler purges expired codes on a fixed interval until
// the process exits.
func (s *Service) StartCleanupScheduler(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			removed, err := s.CleanupExpired()
			if err != nil {
				logger.Error("OTP cleanup failed", err)
				continue
			}
			if removed > 0 {
				logger.Info(fmt.Sprintf("OTP cleanup removed %d expired codes", removed))
			}
		}
	}()
}
