package handler

import (
	"net/http"
	"time"

	"contribution-tracker/api"
	"contribution-tracker/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ContributionHandler обрабатывает HTTP-запросы, связанные с ежедневными вкладами
type ContributionHandler struct {
	*BaseHandler
	contributionUseCase domain.ContributionUseCase
}

// NewContributionHandler создает новый экземпляр ContributionHandler
func NewContributionHandler(contributionUseCase domain.ContributionUseCase, logger *logrus.Logger) *ContributionHandler {
	return &ContributionHandler{
		BaseHandler:         NewBaseHandler(logger),
		contributionUseCase: contributionUseCase,
	}
}

// PostContributions записывает вклад текущего пользователя и возвращает обновлённую серию
func (h *ContributionHandler) PostContributions(c echo.Context) error {
	logEntry := h.logRequest(c, "record_contribution")

	identity, err := requireIdentity(c)
	if err != nil {
		logEntry.Warn("Missing identity")
		return respondError(c, err)
	}

	var req api.PostContributionsJSONBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind record contribution request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	var eventDate *time.Time
	if req.Date != nil {
		d := req.Date.Time
		eventDate = &d
	}
	contributionID := derefString(req.ContributionId)

	logEntry = logEntry.WithFields(logrus.Fields{
		"user_id":         identity.UserID,
		"contribution_id": contributionID,
	})
	logEntry.Info("Recording contribution")

	result, err := h.contributionUseCase.RecordContribution(c.Request().Context(), identity.UserID, contributionID, req.Description, eventDate)
	if err != nil {
		logEntry.WithError(err).Error("Failed to record contribution")
		return respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"current_streak": result.Stats.CurrentStreak,
		"streak_changed": result.StreakChanged,
		"out_of_order":   result.OutOfOrder,
	}).Info("Contribution recorded successfully")

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}
	return c.JSON(status, map[string]interface{}{
		"contribution":   toAPIContribution(result.Contribution),
		"stats":          toAPIUserStats(result.Stats),
		"streak_changed": result.StreakChanged,
		"out_of_order":   result.OutOfOrder,
	})
}

// GetContributionsMy возвращает последние вклады текущего пользователя
func (h *ContributionHandler) GetContributionsMy(c echo.Context) error {
	logEntry := h.logRequest(c, "list_contributions")

	identity, err := requireIdentity(c)
	if err != nil {
		logEntry.Warn("Missing identity")
		return respondError(c, err)
	}

	logEntry = logEntry.WithField("user_id", identity.UserID)
	logEntry.Info("Listing contributions")

	contributions, err := h.contributionUseCase.ListContributions(c.Request().Context(), identity.UserID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list contributions")
		return respondError(c, err)
	}

	logEntry.WithField("count", len(contributions)).Info("Contributions retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"contributions": toAPIContributions(contributions),
	})
}
