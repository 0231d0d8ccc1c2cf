package handler

import (
	"net/http"

	"contribution-tracker/api"
	"contribution-tracker/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы для получения статистических данных.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetUsersUserIdStats возвращает счётчики проектов и серию пользователя.
func (h *StatsHandler) GetUsersUserIdStats(c echo.Context, userId string) error {
	logEntry := h.logRequest(c, "get_user_stats").WithField("user_id", userId)

	if _, err := requireIdentity(c); err != nil {
		logEntry.Warn("Missing identity")
		return respondError(c, err)
	}

	logEntry.Info("Getting user statistics")

	stats, err := h.statsUseCase.GetUserStats(c.Request().Context(), userId)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get user stats")
		return respondError(c, err)
	}

	logEntry.WithField("current_streak", stats.CurrentStreak).Info("User stats retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": toAPIUserStats(stats),
	})
}

// GetStatsLeaderboard возвращает рейтинг пользователей по текущей серии.
func (h *StatsHandler) GetStatsLeaderboard(c echo.Context, params api.GetStatsLeaderboardParams) error {
	logEntry := h.logRequest(c, "get_streak_leaderboard")

	if _, err := requireIdentity(c); err != nil {
		logEntry.Warn("Missing identity")
		return respondError(c, err)
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
		if limit == 0 {
			return respondError(c, domain.ErrInvalidLeaderboardLen)
		}
	}

	logEntry = logEntry.WithField("limit", limit)
	logEntry.Info("Getting streak leaderboard")

	entries, err := h.statsUseCase.GetStreakLeaderboard(c.Request().Context(), limit)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get streak leaderboard")
		return respondError(c, err)
	}

	logEntry.WithField("entries", len(entries)).Info("Streak leaderboard retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"leaderboard": toAPILeaderboard(entries),
	})
}

// PutAdminUsersUserIdStreaks вручную выставляет серии пользователя (только администратор).
func (h *StatsHandler) PutAdminUsersUserIdStreaks(c echo.Context, userId string) error {
	logEntry := h.logRequest(c, "admin_update_streaks").WithField("user_id", userId)

	if _, err := requireAdmin(c); err != nil {
		logEntry.WithError(err).Warn("Admin role required")
		return respondError(c, err)
	}

	var req api.PutAdminUsersUserIdStreaksJSONBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind update streaks request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"current_streak": req.CurrentStreak,
		"longest_streak": req.LongestStreak,
	})
	logEntry.Info("Updating user streaks")

	stats, err := h.statsUseCase.AdminUpdateStreaks(c.Request().Context(), userId, req.CurrentStreak, req.LongestStreak)
	if err != nil {
		logEntry.WithError(err).Error("Failed to update user streaks")
		return respondError(c, err)
	}

	logEntry.Info("User streaks updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": toAPIUserStats(stats),
	})
}
