package domain

import (
	"context"
	"time"
)

// ProjectCounters - счётчики проектов пользователя.
// После каждого успешного перехода Pending+Approved+Rejected == Total.
type ProjectCounters struct {
	TotalProjects    int
	ApprovedProjects int
	PendingProjects  int
	RejectedProjects int
}

// Consistent проверяет неотрицательность счётчиков и инвариант суммы.
func (c ProjectCounters) Consistent() bool {
	if c.TotalProjects < 0 || c.ApprovedProjects < 0 || c.PendingProjects < 0 || c.RejectedProjects < 0 {
		return false
	}
	return c.PendingProjects+c.ApprovedProjects+c.RejectedProjects == c.TotalProjects
}

// StreakState - серия ежедневных вкладов. Все даты - календарные дни в UTC.
type StreakState struct {
	CurrentStreak          int
	LongestStreak          int
	LastContributionDate   *time.Time
	CurrentStreakStartDate *time.Time
	LongestStreakStartDate *time.Time
	LongestStreakEndDate   *time.Time
}

func (s StreakState) clone() StreakState {
	return StreakState{
		CurrentStreak:          s.CurrentStreak,
		LongestStreak:          s.LongestStreak,
		LastContributionDate:   copyDate(s.LastContributionDate),
		CurrentStreakStartDate: copyDate(s.CurrentStreakStartDate),
		LongestStreakStartDate: copyDate(s.LongestStreakStartDate),
		LongestStreakEndDate:   copyDate(s.LongestStreakEndDate),
	}
}

// UserStats - агрегированная статистика пользователя, изменяется только через StatsStore.
type UserStats struct {
	UserID string
	ProjectCounters
	StreakState
	UpdatedAt time.Time
}

// NewUserStats возвращает нулевую статистику для впервые встреченного пользователя.
func NewUserStats(userID string) *UserStats {
	return &UserStats{UserID: userID}
}

// Clone возвращает глубокую копию статистики.
func (s *UserStats) Clone() *UserStats {
	if s == nil {
		return nil
	}
	return &UserStats{
		UserID:          s.UserID,
		ProjectCounters: s.ProjectCounters,
		StreakState:     s.StreakState.clone(),
		UpdatedAt:       s.UpdatedAt,
	}
}

// LeaderboardEntry - строка рейтинга по текущей серии.
type LeaderboardEntry struct {
	UserID        string
	CurrentStreak int
	LongestStreak int
}

// StatsEvent описывает входящее событие и его ключ идемпотентности.
//
// Для однократных событий (Once) наличие маркера означает повтор. Для переходов
// маркер хранит последнее применённое целевое состояние: маркер == To - повтор,
// маркер != From - устаревший исходный статус. Пустой Key отключает проверку.
type StatsEvent struct {
	Key  string
	From string
	To   string
	Once bool
}

const (
	contributionEventPrefix = "contribution:"
	projectEventPrefix      = "project:"
	contributionRecorded    = "recorded"
)

// ContributionEvent - событие записи вклада, ключ - ID вклада.
func ContributionEvent(contributionID string) StatsEvent {
	return StatsEvent{Key: contributionEventPrefix + contributionID, To: contributionRecorded, Once: true}
}

// ProjectCreatedEvent - событие создания проекта.
func ProjectCreatedEvent(projectID string) StatsEvent {
	return StatsEvent{Key: projectEventPrefix + projectID, To: string(StatusPending), Once: true}
}

// ProjectTransitionEvent - событие смены статуса проекта, ключ - (projectID, newStatus).
func ProjectTransitionEvent(projectID string, oldStatus, newStatus ProjectStatus) StatsEvent {
	return StatsEvent{Key: projectEventPrefix + projectID, From: string(oldStatus), To: string(newStatus)}
}

// StatsRepository определяет контракт документного хранилища статистики
// с оптимистичной блокировкой по версии.
type StatsRepository interface {
	// Get возвращает статистику и версию; для отсутствующего документа - нулевую статистику и версию 0.
	Get(ctx context.Context, userID string) (*UserStats, int64, error)
	// GetEventMarker возвращает состояние, зафиксированное для ключа события.
	GetEventMarker(ctx context.Context, userID, eventKey string) (string, bool, error)
	// ConditionalPut атомарно записывает статистику и маркер события, если версия не изменилась.
	// false означает конфликт версий.
	ConditionalPut(ctx context.Context, userID string, stats *UserStats, expectedVersion int64, event StatsEvent) (bool, error)
	// TopByCurrentStreak возвращает лидеров по серии среди пользователей с вкладом не раньше activeSince.
	TopByCurrentStreak(ctx context.Context, activeSince time.Time, limit int) ([]*UserStats, error)
}
