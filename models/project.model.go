package models

import (
	"time"
)

type Project struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	BuyerID string `gorm:"size:64;not null;index" json:"buyer_id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Budget Range
	BudgetMin float64 `gorm:"not null" json:"budget_min"`
	BudgetMax float64 `gorm:"not null" json:"budget_max"`

	Status string `gorm:"size:20;not null;default:'open'" json:"status"` // open, closed, in-progress

	// System Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Buyer User `gorm:"foreignKey:BuyerID" json:"-"`
}
