package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentType is the kind of stored payment method
type PaymentType string

const (
	PaymentCard PaymentType = "CARD"
	PaymentUPI  PaymentType = "UPI"
)

type PaymentMethod struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:uuid;not null"`
	User      User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Type      PaymentType `json:"type" gorm:"size:50;not null"`
	Provider  string      `json:"provider" gorm:"size:100;not null"`
	LastFour  string      `json:"last_four" gorm:"size:4;not null"`
	IsDefault bool        `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
