package usecase_test

import (
	"context"
	"testing"

	"contribution-tracker/internal/domain"
	"contribution-tracker/internal/mocks"
	"contribution-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StatsUseCaseTestSuite struct {
	suite.Suite
	ctx       context.Context
	statsRepo *memoryStatsRepo
	uc        domain.StatsUseCase
}

func (s *StatsUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.statsRepo = newMemoryStatsRepo()
	s.uc = usecase.NewStatsUseCase(s.statsRepo, usecase.NewStatsStore(s.statsRepo), fixedClock{now: today}, 0)
}

func (s *StatsUseCaseTestSuite) seedStreak(userID string, current, longest, daysAgo int) {
	last := domain.CalendarDay(today).AddDate(0, 0, -daysAgo)
	start := last.AddDate(0, 0, -(current - 1))
	s.statsRepo.seed(&domain.UserStats{UserID: userID, StreakState: domain.StreakState{
		CurrentStreak:          current,
		LongestStreak:          longest,
		LastContributionDate:   &last,
		CurrentStreakStartDate: &start,
	}})
}

func (s *StatsUseCaseTestSuite) TestGetUserStats_UnknownUserHasZeroStats() {
	stats, err := s.uc.GetUserStats(s.ctx, "u1")

	s.Require().NoError(err)
	s.Equal("u1", stats.UserID)
	s.Equal(0, stats.TotalProjects)
	s.Equal(0, stats.CurrentStreak)
	s.Nil(stats.LastContributionDate)
}

func (s *StatsUseCaseTestSuite) TestGetUserStats_ActiveStreakFromYesterday() {
	s.seedStreak("u1", 4, 6, 1)

	stats, err := s.uc.GetUserStats(s.ctx, "u1")

	s.Require().NoError(err)
	s.Equal(4, stats.CurrentStreak)
	s.Equal(6, stats.LongestStreak)
	s.NotNil(stats.CurrentStreakStartDate)
}

func (s *StatsUseCaseTestSuite) TestGetUserStats_BrokenStreakReadsAsZero() {
	s.seedStreak("u1", 4, 6, 2)

	stats, err := s.uc.GetUserStats(s.ctx, "u1")

	s.Require().NoError(err)
	s.Equal(0, stats.CurrentStreak)
	s.Nil(stats.CurrentStreakStartDate)
	s.Equal(6, stats.LongestStreak)

	// сохранённый документ не меняется при чтении
	stored, _, err := s.statsRepo.Get(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(4, stored.CurrentStreak)
	s.Equal(0, s.statsRepo.putCount())
}

func (s *StatsUseCaseTestSuite) TestGetUserStats_EmptyUser() {
	_, err := s.uc.GetUserStats(s.ctx, "")
	s.ErrorIs(err, domain.ErrInvalidUserID)
}

func (s *StatsUseCaseTestSuite) TestGetStreakLeaderboard_SkipsBrokenStreaks() {
	s.seedStreak("alice", 3, 3, 0)
	s.seedStreak("bob", 7, 7, 5)
	s.seedStreak("carol", 5, 9, 1)

	entries, err := s.uc.GetStreakLeaderboard(s.ctx, 0)

	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("carol", entries[0].UserID)
	s.Equal(5, entries[0].CurrentStreak)
	s.Equal(9, entries[0].LongestStreak)
	s.Equal("alice", entries[1].UserID)
}

func (s *StatsUseCaseTestSuite) TestGetStreakLeaderboard_BrokenStreaksDoNotCrowdOutActive() {
	s.seedStreak("alice", 3, 3, 0)
	s.seedStreak("bob", 7, 7, 5)
	s.seedStreak("dave", 9, 9, 3)
	s.seedStreak("erin", 2, 4, 1)

	entries, err := s.uc.GetStreakLeaderboard(s.ctx, 2)

	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("alice", entries[0].UserID)
	s.Equal(3, entries[0].CurrentStreak)
	s.Equal("erin", entries[1].UserID)
}

func (s *StatsUseCaseTestSuite) TestGetStreakLeaderboard_NegativeLimit() {
	_, err := s.uc.GetStreakLeaderboard(s.ctx, -1)
	s.ErrorIs(err, domain.ErrInvalidLeaderboardLen)
}

func (s *StatsUseCaseTestSuite) TestAdminUpdateStreaks_Success() {
	s.seedStreak("u1", 2, 3, 0)

	stats, err := s.uc.AdminUpdateStreaks(s.ctx, "u1", 5, 5)

	s.Require().NoError(err)
	s.Equal(5, stats.CurrentStreak)
	s.Equal(5, stats.LongestStreak)
	last := domain.CalendarDay(today)
	s.Equal(last.AddDate(0, 0, -4), *stats.CurrentStreakStartDate)
	s.Equal(last.AddDate(0, 0, -4), *stats.LongestStreakStartDate)
	s.Equal(last, *stats.LongestStreakEndDate)
	s.Equal(1, s.statsRepo.putCount())
}

func (s *StatsUseCaseTestSuite) TestAdminUpdateStreaks_LongestWindowMatchesLength() {
	s.seedStreak("u1", 1, 1, 0)
	last := domain.CalendarDay(today)

	_, err := s.uc.AdminUpdateStreaks(s.ctx, "u1", 3, 3)
	s.Require().NoError(err)
	stats, err := s.uc.AdminUpdateStreaks(s.ctx, "u1", 2, 10)

	s.Require().NoError(err)
	s.Equal(2, stats.CurrentStreak)
	s.Equal(last.AddDate(0, 0, -1), *stats.CurrentStreakStartDate)
	s.Equal(10, stats.LongestStreak)
	s.Equal(last, *stats.LongestStreakEndDate)
	s.Equal(last.AddDate(0, 0, -9), *stats.LongestStreakStartDate)
}

func (s *StatsUseCaseTestSuite) TestAdminUpdateStreaks_WithoutContributionsClearsWindows() {
	start := domain.CalendarDay(today).AddDate(0, 0, -20)
	s.statsRepo.seed(&domain.UserStats{UserID: "u1", StreakState: domain.StreakState{
		CurrentStreak:          1,
		LongestStreak:          3,
		CurrentStreakStartDate: &start,
	}})

	stats, err := s.uc.AdminUpdateStreaks(s.ctx, "u1", 4, 6)

	s.Require().NoError(err)
	s.Equal(4, stats.CurrentStreak)
	s.Nil(stats.CurrentStreakStartDate)
	s.Equal(6, stats.LongestStreak)
	s.Nil(stats.LongestStreakStartDate)
	s.Nil(stats.LongestStreakEndDate)
}

func (s *StatsUseCaseTestSuite) TestAdminUpdateStreaks_ResetToZero() {
	s.seedStreak("u1", 2, 3, 0)

	stats, err := s.uc.AdminUpdateStreaks(s.ctx, "u1", 0, 0)

	s.Require().NoError(err)
	s.Equal(0, stats.CurrentStreak)
	s.Nil(stats.CurrentStreakStartDate)
	s.Nil(stats.LongestStreakStartDate)
	s.Nil(stats.LongestStreakEndDate)
}

func (s *StatsUseCaseTestSuite) TestAdminUpdateStreaks_SameValuesDoNotWrite() {
	s.seedStreak("u1", 2, 3, 0)

	_, err := s.uc.AdminUpdateStreaks(s.ctx, "u1", 2, 3)

	s.Require().NoError(err)
	s.Equal(0, s.statsRepo.putCount())
}

func (s *StatsUseCaseTestSuite) TestAdminUpdateStreaks_ValidationErrors() {
	testCases := []struct {
		name     string
		userID   string
		current  int
		longest  int
		expected error
	}{
		{"Empty user", "", 1, 1, domain.ErrInvalidUserID},
		{"Negative current", "u1", -1, 1, domain.ErrInvalidStreakValues},
		{"Negative longest", "u1", 0, -1, domain.ErrInvalidStreakValues},
		{"Current above longest", "u1", 4, 3, domain.ErrInvalidStreakValues},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.uc.AdminUpdateStreaks(s.ctx, tc.userID, tc.current, tc.longest)
			s.ErrorIs(err, tc.expected)
		})
	}
	s.Equal(0, s.statsRepo.putCount())
}

func TestStatsUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(StatsUseCaseTestSuite))
}

func TestStatsUseCase_GetStreakLeaderboard_PassesLimit(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewStatsUseCase(statsRepo, usecase.NewStatsStore(statsRepo), fixedClock{now: today}, 3)

	activeSince := domain.CalendarDay(today).AddDate(0, 0, -1)
	statsRepo.On("TopByCurrentStreak", ctx, activeSince, 3).Return([]*domain.UserStats{}, nil).Once()
	statsRepo.On("TopByCurrentStreak", ctx, activeSince, 25).Return([]*domain.UserStats{}, nil).Once()

	_, err := uc.GetStreakLeaderboard(ctx, 0)
	require.NoError(t, err)
	entries, err := uc.GetStreakLeaderboard(ctx, 25)
	require.NoError(t, err)

	assert.Empty(t, entries)
	statsRepo.AssertExpectations(t)
	statsRepo.AssertNotCalled(t, "ConditionalPut", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
