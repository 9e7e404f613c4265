package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type User struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Mobile          string          `gorm:"type:varchar(10);uniqueIndex;not null"`
	Name            string          `gorm:"type:varchar(100);not null;default:'User'"`
	Email           *string         `gorm:"type:varchar(255)"`
	PasswordHash    string          `gorm:"type:varchar(255);not null"`
	IsAdmin         bool            `gorm:"not null;default:false"`
	AdminPrivileges pq.StringArray  `gorm:"type:text[];default:'{}'"`
	Balance         decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Verified        bool            `gorm:"not null;default:false"`
	Version         int64           `gorm:"not null;default:0"`
	LastLoginAt     *time.Time      `gorm:"type:timestamp"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
