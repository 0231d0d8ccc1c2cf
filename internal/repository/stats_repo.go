package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contribution-tracker/internal/database"
	"contribution-tracker/internal/domain"
)

// StatsRepository реализует domain.StatsRepository поверх таблиц user_stats и stats_event_markers.
type StatsRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(db *sql.DB, queries *database.Queries) domain.StatsRepository {
	return &StatsRepository{
		db:      db,
		queries: queries,
	}
}

// Get возвращает статистику и её версию. Отсутствующий документ - нулевая статистика с версией 0.
func (r *StatsRepository) Get(ctx context.Context, userID string) (*domain.UserStats, int64, error) {
	row, err := r.queries.GetUserStats(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewUserStats(userID), 0, nil
		}
		return nil, 0, fmt.Errorf("failed to get user stats: %w", err)
	}

	return toDomainStats(row), row.Version, nil
}

// GetEventMarker возвращает последнее применённое состояние события.
func (r *StatsRepository) GetEventMarker(ctx context.Context, userID, eventKey string) (string, bool, error) {
	state, err := r.queries.GetEventMarker(ctx, database.GetEventMarkerParams{
		UserID:   userID,
		EventKey: eventKey,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get event marker: %w", err)
	}
	return state, true, nil
}

// ConditionalPut записывает статистику, только если версия в базе равна expectedVersion,
// и в той же транзакции сохраняет маркер события.
func (r *StatsRepository) ConditionalPut(
	ctx context.Context,
	userID string,
	stats *domain.UserStats,
	expectedVersion int64,
	event domain.StatsEvent,
) (ok bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil || !ok {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Пишем документ: вставка для нового пользователя, иначе обновление по версии
	var affected int64
	if expectedVersion == 0 {
		affected, err = txQueries.InsertUserStats(ctx, database.InsertUserStatsParams{
			UserID:                 userID,
			TotalProjects:          int32(stats.TotalProjects),
			ApprovedProjects:       int32(stats.ApprovedProjects),
			PendingProjects:        int32(stats.PendingProjects),
			RejectedProjects:       int32(stats.RejectedProjects),
			CurrentStreak:          int32(stats.CurrentStreak),
			LongestStreak:          int32(stats.LongestStreak),
			LastContributionDate:   toNullDate(stats.LastContributionDate),
			CurrentStreakStartDate: toNullDate(stats.CurrentStreakStartDate),
			LongestStreakStartDate: toNullDate(stats.LongestStreakStartDate),
			LongestStreakEndDate:   toNullDate(stats.LongestStreakEndDate),
			UpdatedAt:              updatedAt(stats),
		})
	} else {
		affected, err = txQueries.UpdateUserStats(ctx, database.UpdateUserStatsParams{
			UserID:                 userID,
			TotalProjects:          int32(stats.TotalProjects),
			ApprovedProjects:       int32(stats.ApprovedProjects),
			PendingProjects:        int32(stats.PendingProjects),
			RejectedProjects:       int32(stats.RejectedProjects),
			CurrentStreak:          int32(stats.CurrentStreak),
			LongestStreak:          int32(stats.LongestStreak),
			LastContributionDate:   toNullDate(stats.LastContributionDate),
			CurrentStreakStartDate: toNullDate(stats.CurrentStreakStartDate),
			LongestStreakStartDate: toNullDate(stats.LongestStreakStartDate),
			LongestStreakEndDate:   toNullDate(stats.LongestStreakEndDate),
			UpdatedAt:              updatedAt(stats),
			Version:                expectedVersion,
		})
	}
	if err != nil {
		return false, fmt.Errorf("failed to write user stats: %w", err)
	}
	if affected == 0 {
		// версия изменилась с момента чтения
		return false, nil
	}

	// 2. Фиксируем маркер события
	if event.Key != "" {
		err = txQueries.UpsertEventMarker(ctx, database.UpsertEventMarkerParams{
			UserID:   userID,
			EventKey: event.Key,
			State:    event.To,
		})
		if err != nil {
			return false, fmt.Errorf("failed to record event marker: %w", err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// TopByCurrentStreak возвращает до limit пользователей с наибольшей серией среди тех,
// чей последний вклад не раньше activeSince.
func (r *StatsRepository) TopByCurrentStreak(ctx context.Context, activeSince time.Time, limit int) ([]*domain.UserStats, error) {
	rows, err := r.queries.ListTopByCurrentStreak(ctx, database.ListTopByCurrentStreakParams{
		ActiveSince: domain.CalendarDay(activeSince),
		Limit:       int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get streak leaderboard: %w", err)
	}

	result := make([]*domain.UserStats, len(rows))
	for i, row := range rows {
		result[i] = toDomainStats(row)
	}

	return result, nil
}

func toDomainStats(row database.UserStat) *domain.UserStats {
	return &domain.UserStats{
		UserID: row.UserID,
		ProjectCounters: domain.ProjectCounters{
			TotalProjects:    int(row.TotalProjects),
			ApprovedProjects: int(row.ApprovedProjects),
			PendingProjects:  int(row.PendingProjects),
			RejectedProjects: int(row.RejectedProjects),
		},
		StreakState: domain.StreakState{
			CurrentStreak:          int(row.CurrentStreak),
			LongestStreak:          int(row.LongestStreak),
			LastContributionDate:   fromNullDate(row.LastContributionDate),
			CurrentStreakStartDate: fromNullDate(row.CurrentStreakStartDate),
			LongestStreakStartDate: fromNullDate(row.LongestStreakStartDate),
			LongestStreakEndDate:   fromNullDate(row.LongestStreakEndDate),
		},
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func updatedAt(stats *domain.UserStats) time.Time {
	if stats.UpdatedAt.IsZero() {
		return time.Now().UTC()
	}
	return stats.UpdatedAt
}

// Конвертируем *time.Time ↔ sql.NullTime (календарный день в UTC)
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: domain.CalendarDay(*t), Valid: true}
}

func fromNullDate(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	d := domain.CalendarDay(t.Time)
	return &d
}
