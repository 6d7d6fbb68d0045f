package models

import (
	"time"
)

type Bid struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	SellerID  string `gorm:"size:64;not null;index" json:"seller_id"`

	Amount   float64 `gorm:"not null" json:"amount"`
	Proposal string  `gorm:"type:text" json:"proposal"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"` // pending, accepted, rejected

	// System Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	Seller  User    `gorm:"foreignKey:SellerID" json:"-"`
}
