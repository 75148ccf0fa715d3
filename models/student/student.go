package student

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Student represents a self-registered account. Accounts are created
// inactive and stay that way until an administrator approves them; the
// email is the login identifier and is immutable after registration.
type Student struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid      string `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	Password  string `gorm:"type:varchar(128);not null" json:"-"`

	// Profile
	PhotoURL     string     `gorm:"type:varchar(2048)" json:"photo_url,omitempty"`
	InstagramURL string     `gorm:"type:varchar(500)" json:"instagram_url,omitempty"`
	LinkedinURL  string     `gorm:"type:varchar(500)" json:"linkedin_url,omitempty"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`
	Bio          string     `gorm:"type:text" json:"bio,omitempty"`

	IsActive  bool       `gorm:"default:false" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// FullName returns the display name used in API responses.
func (s *Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// SetPassword stores a bcrypt hash of the raw password. The raw value
// itself is never persisted or logged.
func (s *Student) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.Password = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored hash. bcrypt's
// comparison is constant-time over the hash.
func (s *Student) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(raw)) == nil
}
