package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/infrastructure/models"
	"betx.backend/pkg/utils"
)

// StatsRepository implements per-user bet statistics
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Create inserts a stats record
func (r *StatsRepository) Create(ctx context.Context, stats *entities.Stats) error {
	if stats.ID == uuid.Nil {
		stats.ID = utils.GenerateUUIDv7()
	}
	if stats.WinRate == "" {
		stats.WinRate = entities.ZeroWinRate
	}

	m := &models.Stats{
		ID:        stats.ID,
		UserID:    stats.UserID,
		TotalBets: stats.TotalBets,
		Wins:      stats.Wins,
		Losses:    stats.Losses,
		WinRate:   stats.WinRate,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	stats.CreatedAt = m.CreatedAt
	stats.UpdatedAt = m.UpdatedAt
	return nil
}

// GetOrCreate returns the stats for userID, creating the zero record when none exists.
// Calling it repeatedly never creates more than one record.
func (r *StatsRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.Stats, error) {
	db := GetDB(ctx, r.db)

	var m models.Stats
	err := db.Where(models.Stats{UserID: userID}).
		Attrs(models.Stats{ID: utils.GenerateUUIDv7(), WinRate: entities.ZeroWinRate}).
		FirstOrCreate(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a race with a concurrent create; the row exists now
		err = db.Where("user_id = ?", userID).First(&m).Error
	}
	if err != nil {
		return nil, err
	}
	return toStatsEntity(&m), nil
}

// Update writes the counters and win rate
func (r *StatsRepository) Update(ctx context.Context, stats *entities.Stats) error {
	result := GetDB(ctx, r.db).Model(&models.Stats{}).Where("user_id = ?", stats.UserID).Updates(map[string]interface{}{
		"total_bets": stats.TotalBets,
		"wins":       stats.Wins,
		"losses":     stats.Losses,
		"win_rate":   stats.WinRate,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toStatsEntity(m *models.Stats) *entities.Stats {
	return &entities.Stats{
		ID:        m.ID,
		UserID:    m.UserID,
		TotalBets: m.TotalBets,
		Wins:      m.Wins,
		Losses:    m.Losses,
		WinRate:   m.WinRate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
