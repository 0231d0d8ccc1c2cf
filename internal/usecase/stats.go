package usecase

import (
	"context"
	"sort"
	"time"

	"contribution-tracker/internal/domain"
)

// DefaultLeaderboardLimit - размер рейтинга по умолчанию.
const DefaultLeaderboardLimit = 10

// StatsUseCase реализует бизнес-логику для работы со статистикой.
type StatsUseCase struct {
	statsRepo    domain.StatsRepository
	store        *StatsStore
	clock        domain.Clock
	defaultLimit int
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(statsRepo domain.StatsRepository, store *StatsStore, clock domain.Clock, defaultLimit int) domain.StatsUseCase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLeaderboardLimit
	}
	return &StatsUseCase{
		statsRepo:    statsRepo,
		store:        store,
		clock:        clock,
		defaultLimit: defaultLimit,
	}
}

// GetUserStats возвращает статистику пользователя; прерванная серия отдаётся как 0.
func (uc *StatsUseCase) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	stats, err := uc.store.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := stats.Clone()
	if domain.EffectiveStreak(view.StreakState, uc.clock.Now()) == 0 {
		view.CurrentStreak = 0
		view.CurrentStreakStartDate = nil
	}
	return view, nil
}

// GetStreakLeaderboard возвращает пользователей с самыми длинными активными сериями.
func (uc *StatsUseCase) GetStreakLeaderboard(ctx context.Context, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLeaderboardLen
	}
	if limit == 0 {
		limit = uc.defaultLimit
	}

	// Серия активна, только если последний вклад был сегодня или вчера
	now := uc.clock.Now()
	activeSince := domain.CalendarDay(now).AddDate(0, 0, -1)
	top, err := uc.statsRepo.TopByCurrentStreak(ctx, activeSince, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(top))
	for _, s := range top {
		current := domain.EffectiveStreak(s.StreakState, now)
		if current == 0 {
			continue
		}
		entries = append(entries, &domain.LeaderboardEntry{
			UserID:        s.UserID,
			CurrentStreak: current,
			LongestStreak: s.LongestStreak,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CurrentStreak > entries[j].CurrentStreak
	})

	return entries, nil
}

// AdminUpdateStreaks вручную выставляет серии пользователя через StatsStore.
func (uc *StatsUseCase) AdminUpdateStreaks(ctx context.Context, userID string, currentStreak, longestStreak int) (*domain.UserStats, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if currentStreak < 0 || longestStreak < 0 || currentStreak > longestStreak {
		return nil, domain.ErrInvalidStreakValues
	}

	return uc.store.Apply(ctx, userID, domain.StatsEvent{}, func(s *domain.UserStats) (bool, error) {
		if s.CurrentStreak == currentStreak && s.LongestStreak == longestStreak {
			return false, nil
		}

		// 1. Текущая серия заканчивается последним вкладом; без него окно неизвестно
		s.CurrentStreak = currentStreak
		s.CurrentStreakStartDate = nil
		if currentStreak > 0 && s.LastContributionDate != nil {
			start := domain.CalendarDay(*s.LastContributionDate).AddDate(0, 0, -(currentStreak - 1))
			s.CurrentStreakStartDate = &start
		}

		// 2. Окно рекордной серии: совпадает с текущей, иначе отсчитывается от прежнего конца
		var end *time.Time
		switch {
		case longestStreak == 0:
		case longestStreak == currentStreak && s.CurrentStreakStartDate != nil:
			last := domain.CalendarDay(*s.LastContributionDate)
			end = &last
		case s.LongestStreakEndDate != nil:
			prev := domain.CalendarDay(*s.LongestStreakEndDate)
			end = &prev
		}

		s.LongestStreak = longestStreak
		s.LongestStreakStartDate = nil
		s.LongestStreakEndDate = end
		if end != nil {
			start := end.AddDate(0, 0, -(longestStreak - 1))
			s.LongestStreakStartDate = &start
		}
		return true, nil
	})
}
