package domain

import (
	"context"
	"time"
)

// ContributionUseCase определяет бизнес-логику записи ежедневных вкладов.
type ContributionUseCase interface {
	// RecordContribution записывает вклад и обновляет серию. Пустой contributionID
	// заменяется сгенерированным, nil eventDate - текущим моментом.
	RecordContribution(ctx context.Context, userID, contributionID, description string, eventDate *time.Time) (*ContributionResult, error)
	ListContributions(ctx context.Context, userID string) ([]*Contribution, error)
}

// ProjectUseCase определяет бизнес-логику, связывающую проекты со счётчиками.
type ProjectUseCase interface {
	CreateProject(ctx context.Context, project *Project) (*Project, *UserStats, error)
	ChangeProjectStatus(ctx context.Context, projectID, userID string, oldStatus, newStatus ProjectStatus) (*UserStats, error)
	UpdateProjectStatus(ctx context.Context, projectID string, newStatus ProjectStatus, feedback string) (*Project, *UserStats, error)
	ListMyProjects(ctx context.Context, userID string) ([]*Project, error)
	ListApprovedProjects(ctx context.Context) ([]*Project, error)
	// ListProjects - административный список; StatusNone возвращает проекты в любом статусе.
	ListProjects(ctx context.Context, status ProjectStatus) ([]*Project, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой.
type StatsUseCase interface {
	GetUserStats(ctx context.Context, userID string) (*UserStats, error)
	GetStreakLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
	AdminUpdateStreaks(ctx context.Context, userID string, currentStreak, longestStreak int) (*UserStats, error)
}
