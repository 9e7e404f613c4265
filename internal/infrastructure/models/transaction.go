package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	AdminID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Status    string          `gorm:"type:varchar(20);not null"`
	Note      string          `gorm:"type:text"`
	CreatedAt time.Time
}
