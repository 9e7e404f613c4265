package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/usecases"
)

func TestActivityUsecase_RecordActivityValidatesType(t *testing.T) {
	activities := new(MockActivityRepository)
	uc := usecases.NewActivityUsecase(activities, new(MockStatsRepository))

	_, err := uc.RecordActivity(context.Background(), uuid.New(), entities.ActivityType("jackpot"), entities.ActivityDetails{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActivityUsecase_RecentActivityDefaultsAndOrdering(t *testing.T) {
	env := newStoreEnv(t)
	uc := usecases.NewActivityUsecase(env.activities, env.stats)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 15; i++ {
		_, err := uc.RecordActivity(ctx, userID, entities.ActivityLogin, entities.ActivityDetails{Device: "d"})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	items, err := uc.GetRecentActivity(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, items, 10)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}

	items, err = uc.GetRecentActivity(ctx, userID, 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = uc.GetRecentActivity(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestActivityUsecase_StatsAreCreatedOnceAndCountBets(t *testing.T) {
	env := newStoreEnv(t)
	uc := usecases.NewActivityUsecase(env.activities, env.stats)
	ctx := context.Background()
	userID := uuid.New()

	first, err := uc.GetStats(ctx, userID)
	require.NoError(t, err)
	second, err := uc.GetStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "0%", second.WinRate)
	assert.Equal(t, int64(1), env.count(t, "stats"))

	for _, won := range []bool{true, false, false} {
		_, err := uc.RecordBetOutcome(ctx, userID, won)
		require.NoError(t, err)
	}
	stats, err := uc.GetStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBets)
	assert.Equal(t, stats.TotalBets, stats.Wins+stats.Losses)
	assert.Equal(t, "33.33%", stats.WinRate)
}
