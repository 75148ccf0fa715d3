package admin

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Administrator is a staff credential record. Administrators are not
// students: they are provisioned by the ensure-admin seeder, bypass the
// is_active gate and surface as a synthetic identity in responses.
type Administrator struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password  string    `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// SetPassword stores a bcrypt hash of the raw password.
func (a *Administrator) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored hash.
func (a *Administrator) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(raw)) == nil
}
