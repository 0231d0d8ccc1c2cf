package handler

import (
	"errors"
	"net/http"
	"time"

	"contribution-tracker/api"
	"contribution-tracker/internal/domain"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: domain.CalendarDay(*t)}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toAPIContribution(c *domain.Contribution) api.Contribution {
	return api.Contribution{
		ContributionId: c.ID,
		UserId:         c.UserID,
		Description:    c.Description,
		Date:           openapi_types.Date{Time: domain.CalendarDay(c.Date)},
		CreatedAt:      c.CreatedAt,
	}
}

func toAPIContributions(contributions []*domain.Contribution) []api.Contribution {
	result := make([]api.Contribution, len(contributions))
	for i, c := range contributions {
		result[i] = toAPIContribution(c)
	}
	return result
}

func toAPIUserStats(stats *domain.UserStats) api.UserStats {
	var updatedAt *time.Time
	if !stats.UpdatedAt.IsZero() {
		updatedAt = &stats.UpdatedAt
	}

	return api.UserStats{
		UserId:                 stats.UserID,
		TotalProjects:          stats.TotalProjects,
		ApprovedProjects:       stats.ApprovedProjects,
		PendingProjects:        stats.PendingProjects,
		RejectedProjects:       stats.RejectedProjects,
		CurrentStreak:          stats.CurrentStreak,
		LongestStreak:          stats.LongestStreak,
		LastContributionDate:   toAPIDate(stats.LastContributionDate),
		CurrentStreakStartDate: toAPIDate(stats.CurrentStreakStartDate),
		LongestStreakStartDate: toAPIDate(stats.LongestStreakStartDate),
		LongestStreakEndDate:   toAPIDate(stats.LongestStreakEndDate),
		UpdatedAt:              updatedAt,
	}
}

func toAPIProject(p *domain.Project) api.Project {
	return api.Project{
		ProjectId:        p.ID,
		AuthorId:         p.AuthorID,
		Title:            p.Title,
		Description:      optionalString(p.Description),
		RepoLink:         optionalString(p.RepoLink),
		DemoLink:         optionalString(p.DemoLink),
		LinkedinPostLink: optionalString(p.LinkedInPostLink),
		Status:           api.ProjectStatus(p.Status),
		AdminFeedback:    optionalString(p.AdminFeedback),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toAPIProjects(projects []*domain.Project) []api.Project {
	result := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		result = append(result, toAPIProject(p))
	}
	return result
}

func toAPILeaderboard(entries []*domain.LeaderboardEntry) []api.LeaderboardEntry {
	result := make([]api.LeaderboardEntry, len(entries))
	for i, e := range entries {
		result[i] = api.LeaderboardEntry{
			UserId:        e.UserID,
			CurrentStreak: e.CurrentStreak,
			LongestStreak: e.LongestStreak,
		}
	}
	return result
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(httpErr.Code),
			Message: httpErr.Message,
		},
	}
}

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func getHTTPStatusCode(err error) int {
	switch {
	// Bad Request errors (400) - валидация
	case isAny(err, domain.ErrInvalidUserID, domain.ErrInvalidProjectID,
		domain.ErrInvalidProjectTitle, domain.ErrInvalidStatus,
		domain.ErrEmptyDescription, domain.ErrInvalidEventDate,
		domain.ErrInvalidStreakValues, domain.ErrInvalidLeaderboardLen):
		return http.StatusBadRequest

	// Identity errors (401, 403)
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not Found errors (404)
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound

	// Conflict errors (409)
	case isAny(err, domain.ErrProjectAlreadyExists, domain.ErrProjectStatusChanged,
		domain.ErrContributionAlreadyExists, domain.ErrInvalidTransition,
		domain.ErrOutOfOrderEvent, domain.ErrConflict):
		return http.StatusConflict

	// Timeout (503) - клиент может повторить запрос
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
