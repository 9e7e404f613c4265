package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"betx.backend/internal/domain/entities"
	"betx.backend/internal/infrastructure/models"
	"betx.backend/pkg/utils"
)

// ActivityRepository implements the activity log
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity entry
func (r *ActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = utils.GenerateUUIDv7()
	}

	m := &models.Activity{
		ID:        activity.ID,
		UserID:    activity.UserID,
		Type:      string(activity.Type),
		Game:      activity.Game,
		Outcome:   activity.Outcome,
		Method:    activity.Method,
		Status:    activity.Status,
		Device:    activity.Device,
		Location:  activity.Location,
		CreatedAt: activity.CreatedAt,
	}
	if activity.Amount != nil {
		m.Amount = decimal.NewNullDecimal(*activity.Amount)
	}

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	activity.CreatedAt = m.CreatedAt
	return nil
}

// ListRecent returns the newest activity entries for a user
func (r *ActivityRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Activity, error) {
	var rows []models.Activity
	err := GetDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Activity, 0, len(rows))
	for i := range rows {
		items = append(items, toActivityEntity(&rows[i]))
	}
	return items, nil
}

func toActivityEntity(m *models.Activity) *entities.Activity {
	a := &entities.Activity{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.ActivityType(m.Type),
		Game:      m.Game,
		Outcome:   m.Outcome,
		Method:    m.Method,
		Status:    m.Status,
		Device:    m.Device,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
	}
	if m.Amount.Valid {
		amount := m.Amount.Decimal
		a.Amount = &amount
	}
	return a
}
