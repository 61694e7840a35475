package loanoffer

import (
	"time"

	"gorm.io/gorm"
)

type Offer struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	OfferID    string         `gorm:"size:32;uniqueIndex:ux_loan_offers_offer_id_active" json:"offer_id"`
	Title      string         `gorm:"size:191" json:"title"`
	Category   string         `gorm:"size:64;index" json:"category"`
	Amount     float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Interest   float64        `gorm:"type:decimal(6,4)" json:"interest"`
	ShowOnHome bool           `gorm:"default:false" json:"show_on_home"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Offer) TableName() string { return "loan_offers" }
