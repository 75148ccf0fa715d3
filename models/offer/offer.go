package offer

import (
	"time"
)

// SeasonalOffer is a promotional announcement shown in the site marquee.
// Higher priority offers are listed first.
type SeasonalOffer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Priority  int       `gorm:"default:0" json:"priority"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
