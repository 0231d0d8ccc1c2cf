package usecase_test

import (
	"context"
	"testing"
	"time"

	"contribution-tracker/internal/domain"
	"contribution-tracker/internal/mocks"
	"contribution-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)

func echoAppend(_ context.Context, c *domain.Contribution) *domain.Contribution {
	return c
}

func newContributionUseCase(repo *memoryStatsRepo, contributionRepo *mocks.ContributionRepository, policy usecase.OutOfOrderPolicy) domain.ContributionUseCase {
	store := usecase.NewStatsStore(repo)
	return usecase.NewContributionUseCase(contributionRepo, store, fixedClock{now: today}, usecase.ContributionSettings{
		OutOfOrderPolicy: policy,
	})
}

func TestContributionUseCase_RecordContribution_FirstContribution(t *testing.T) {
	ctx := context.Background()
	statsRepo := newMemoryStatsRepo()
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(statsRepo, contributionRepo, usecase.OutOfOrderReset)

	contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(echoAppend, true, nil)

	result, err := uc.RecordContribution(ctx, "u1", "c1", "  Fixed the docs  ", nil)

	require.NoError(t, err)
	d := domain.CalendarDay(today)
	assert.True(t, result.StreakChanged)
	assert.False(t, result.OutOfOrder)
	assert.True(t, result.Created)
	assert.Equal(t, "c1", result.Contribution.ID)
	assert.Equal(t, "Fixed the docs", result.Contribution.Description)
	assert.Equal(t, 1, result.Stats.CurrentStreak)
	assert.Equal(t, 1, result.Stats.LongestStreak)
	assert.Equal(t, d, *result.Stats.CurrentStreakStartDate)
	assert.Equal(t, d, *result.Stats.LongestStreakStartDate)
	contributionRepo.AssertExpectations(t)
}

func TestContributionUseCase_RecordContribution_GeneratesID(t *testing.T) {
	ctx := context.Background()
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(newMemoryStatsRepo(), contributionRepo, usecase.OutOfOrderReset)

	contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(echoAppend, true, nil)

	result, err := uc.RecordContribution(ctx, "u1", "", "Reviewed a PR", nil)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Contribution.ID)
}

func TestContributionUseCase_RecordContribution_SameDayDoesNotInflateStreak(t *testing.T) {
	ctx := context.Background()
	statsRepo := newMemoryStatsRepo()
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(statsRepo, contributionRepo, usecase.OutOfOrderReset)

	contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(echoAppend, true, nil)

	first, err := uc.RecordContribution(ctx, "u1", "c1", "Morning work", nil)
	require.NoError(t, err)
	second, err := uc.RecordContribution(ctx, "u1", "c2", "Evening work", nil)
	require.NoError(t, err)

	assert.True(t, first.StreakChanged)
	assert.False(t, second.StreakChanged)
	assert.Equal(t, 1, second.Stats.CurrentStreak)
	assert.Equal(t, 1, statsRepo.putCount())
}

func TestContributionUseCase_RecordContribution_ConsecutiveDay(t *testing.T) {
	ctx := context.Background()
	statsRepo := newMemoryStatsRepo()
	d := domain.CalendarDay(today).AddDate(0, 0, -1)
	start := d.AddDate(0, 0, -4)
	statsRepo.seed(&domain.UserStats{UserID: "u1", StreakState: domain.StreakState{
		CurrentStreak:          5,
		LongestStreak:          5,
		LastContributionDate:   &d,
		CurrentStreakStartDate: &start,
		LongestStreakStartDate: &start,
		LongestStreakEndDate:   &d,
	}})
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(statsRepo, contributionRepo, usecase.OutOfOrderReset)

	contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(echoAppend, true, nil)

	result, err := uc.RecordContribution(ctx, "u1", "c1", "Day six", nil)

	require.NoError(t, err)
	assert.Equal(t, 6, result.Stats.CurrentStreak)
	assert.Equal(t, 6, result.Stats.LongestStreak)
	assert.Equal(t, domain.CalendarDay(today), *result.Stats.LongestStreakEndDate)
}

func TestContributionUseCase_RecordContribution_RetrySameIDIsIdempotent(t *testing.T) {
	ctx := context.Background()
	statsRepo := newMemoryStatsRepo()
	yesterday := today.AddDate(0, 0, -1)
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(statsRepo, contributionRepo, usecase.OutOfOrderReset)

	contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(echoAppend, true, nil)

	_, err := uc.RecordContribution(ctx, "u1", "c1", "Yesterday", &yesterday)
	require.NoError(t, err)
	_, err = uc.RecordContribution(ctx, "u1", "c2", "Today", nil)
	require.NoError(t, err)

	// повтор первого запроса не должен сбросить серию как запоздавшее событие
	retry, err := uc.RecordContribution(ctx, "u1", "c1", "Yesterday", &yesterday)

	require.NoError(t, err)
	assert.False(t, retry.StreakChanged)
	assert.Equal(t, 2, retry.Stats.CurrentStreak)
	assert.Equal(t, 2, statsRepo.putCount())
}

func TestContributionUseCase_RecordContribution_StoredRetryIsNotCreated(t *testing.T) {
	ctx := context.Background()
	statsRepo := newMemoryStatsRepo()
	event := domain.ContributionEvent("c1")
	statsRepo.seedMarker("u1", event.Key, event.To)
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(statsRepo, contributionRepo, usecase.OutOfOrderReset)

	existing := &domain.Contribution{ID: "c1", UserID: "u1", Description: "Morning work", Date: domain.CalendarDay(today)}
	contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(existing, false, nil)

	result, err := uc.RecordContribution(ctx, "u1", "c1", "Morning work", nil)

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.False(t, result.StreakChanged)
	assert.Equal(t, existing, result.Contribution)
	assert.Equal(t, 0, statsRepo.putCount())
}

func TestContributionUseCase_RecordContribution_OutOfOrderPolicies(t *testing.T) {
	ctx := context.Background()
	last := domain.CalendarDay(today)
	late := today.AddDate(0, 0, -3)

	seed := func() *memoryStatsRepo {
		repo := newMemoryStatsRepo()
		repo.seed(&domain.UserStats{UserID: "u1", StreakState: domain.StreakState{
			CurrentStreak:        2,
			LongestStreak:        4,
			LastContributionDate: &last,
		}})
		return repo
	}

	t.Run("Reset", func(t *testing.T) {
		contributionRepo := &mocks.ContributionRepository{}
		uc := newContributionUseCase(seed(), contributionRepo, usecase.OutOfOrderReset)
		contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(echoAppend, true, nil)

		result, err := uc.RecordContribution(ctx, "u1", "c1", "Backfilled", &late)

		require.NoError(t, err)
		assert.True(t, result.OutOfOrder)
		assert.Equal(t, 1, result.Stats.CurrentStreak)
		assert.Equal(t, 4, result.Stats.LongestStreak)
		assert.Equal(t, last, *result.Stats.LastContributionDate)
	})

	t.Run("Reject", func(t *testing.T) {
		repo := seed()
		contributionRepo := &mocks.ContributionRepository{}
		uc := newContributionUseCase(repo, contributionRepo, usecase.OutOfOrderReject)

		result, err := uc.RecordContribution(ctx, "u1", "c1", "Backfilled", &late)

		assert.ErrorIs(t, err, domain.ErrOutOfOrderEvent)
		assert.Nil(t, result)
		assert.Equal(t, 0, repo.putCount())
		contributionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestContributionUseCase_RecordContribution_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(newMemoryStatsRepo(), contributionRepo, usecase.OutOfOrderReset)
	tomorrow := today.AddDate(0, 0, 1)

	testCases := []struct {
		name        string
		userID      string
		description string
		date        *time.Time
		expected    error
	}{
		{"Empty user", "", "work", nil, domain.ErrInvalidUserID},
		{"Blank description", "u1", "   ", nil, domain.ErrEmptyDescription},
		{"Future date", "u1", "work", &tomorrow, domain.ErrInvalidEventDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := uc.RecordContribution(ctx, tc.userID, "c1", tc.description, tc.date)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, result)
		})
	}
	contributionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestContributionUseCase_RecordContribution_ForeignIDRejected(t *testing.T) {
	ctx := context.Background()
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(newMemoryStatsRepo(), contributionRepo, usecase.OutOfOrderReset)

	existing := &domain.Contribution{ID: "c1", UserID: "u2", Description: "theirs", Date: today}
	contributionRepo.On("Append", ctx, mock.AnythingOfType("*domain.Contribution")).Return(existing, false, nil)

	result, err := uc.RecordContribution(ctx, "u1", "c1", "mine", nil)

	assert.ErrorIs(t, err, domain.ErrContributionAlreadyExists)
	assert.Nil(t, result)
}

func TestContributionUseCase_ListContributions(t *testing.T) {
	ctx := context.Background()
	contributionRepo := &mocks.ContributionRepository{}
	uc := newContributionUseCase(newMemoryStatsRepo(), contributionRepo, usecase.OutOfOrderReset)

	expected := []*domain.Contribution{
		{ID: "c2", UserID: "u1", Description: "second", Date: today},
		{ID: "c1", UserID: "u1", Description: "first", Date: today.AddDate(0, 0, -1)},
	}
	contributionRepo.On("ListByUser", ctx, "u1", usecase.DefaultContributionsPageLimit).Return(expected, nil)

	result, err := uc.ListContributions(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, expected, result)

	_, err = uc.ListContributions(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)
}
