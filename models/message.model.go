package models

import (
	"time"
)

type Message struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SenderID   string `gorm:"size:64;index;not null" json:"sender_id"`
	ReceiverID string `gorm:"size:64;index;not null" json:"receiver_id"`

	Content string `gorm:"type:text;not null" json:"content"`

	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`

	// Relations
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
