package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Activity struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID           `gorm:"type:uuid;not null;index:idx_activities_user_created,priority:1"`
	Type      string              `gorm:"type:varchar(20);not null"`
	Amount    decimal.NullDecimal `gorm:"type:numeric(20,2)"`
	Game      string              `gorm:"type:varchar(50)"`
	Outcome   string              `gorm:"type:varchar(20)"`
	Method    string              `gorm:"type:varchar(50)"`
	Status    string              `gorm:"type:varchar(20)"`
	Device    string              `gorm:"type:varchar(255)"`
	Location  string              `gorm:"type:varchar(255)"`
	CreatedAt time.Time           `gorm:"index:idx_activities_user_created,priority:2,sort:desc"`
}
