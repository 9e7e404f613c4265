package models

import (
	"time"

	"github.com/google/uuid"
)

type Stats struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TotalBets int64     `gorm:"not null;default:0"`
	Wins      int64     `gorm:"not null;default:0"`
	Losses    int64     `gorm:"not null;default:0"`
	WinRate   string    `gorm:"type:varchar(10);not null;default:'0%'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Stats) TableName() string {
	return "stats"
}
