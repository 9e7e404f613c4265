package usecases

import (
	"context"

	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/domain/repositories"
)

// ActivityUsecase records activity entries and maintains bet statistics
type ActivityUsecase struct {
	activityRepo repositories.ActivityRepository
	statsRepo    repositories.StatsRepository
}

// NewActivityUsecase creates a new activity usecase
func NewActivityUsecase(activityRepo repositories.ActivityRepository, statsRepo repositories.StatsRepository) *ActivityUsecase {
	return &ActivityUsecase{activityRepo: activityRepo, statsRepo: statsRepo}
}

// RecordActivity appends one activity entry
func (u *ActivityUsecase) RecordActivity(ctx context.Context, userID uuid.UUID, activityType entities.ActivityType, details entities.ActivityDetails) (*entities.Activity, error) {
	if !activityType.Valid() {
		return nil, domainerrors.Validation("invalid activity type")
	}
	activity := entities.NewActivity(userID, activityType, details)
	if err := u.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// GetRecentActivity returns at most limit entries, newest first. limit <= 0 means 10.
func (u *ActivityUsecase) GetRecentActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Activity, error) {
	return u.activityRepo.ListRecent(ctx, userID, entities.NormalizeActivityLimit(limit))
}

// GetStats returns the user's stats, creating the zero record on first access
func (u *ActivityUsecase) GetStats(ctx context.Context, userID uuid.UUID) (*entities.Stats, error) {
	return u.statsRepo.GetOrCreate(ctx, userID)
}

// RecordBetOutcome counts one settled bet. Call it inside the unit of work that settles the bet.
func (u *ActivityUsecase) RecordBetOutcome(ctx context.Context, userID uuid.UUID, won bool) (*entities.Stats, error) {
	stats, err := u.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.RecordOutcome(won)
	if err := u.statsRepo.Update(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
