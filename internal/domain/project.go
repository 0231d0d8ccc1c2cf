package domain

import (
	"context"
	"time"
)

// Project представляет заявку участника на проект.
type Project struct {
	ID               string
	AuthorID         string
	Title            string
	Description      string
	RepoLink         string
	DemoLink         string
	LinkedInPostLink string
	Status           ProjectStatus
	AdminFeedback    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProjectRepository определяет контракт для работы с хранилищем проектов.
// Записи проектов не находятся под контролем StatsStore.
type ProjectRepository interface {
	// Create добавляет проект; повторная вставка с тем же ID возвращает сохранённую запись и false.
	Create(ctx context.Context, project *Project) (*Project, bool, error)
	GetByID(ctx context.Context, projectID string) (*Project, error)
	// UpdateStatus меняет статус, только если текущий статус равен oldStatus.
	UpdateStatus(ctx context.Context, projectID string, oldStatus, newStatus ProjectStatus, feedback string) (*Project, error)
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]*Project, error)
	// ListByStatus возвращает новые проекты первыми; StatusNone означает любой статус.
	ListByStatus(ctx context.Context, status ProjectStatus, limit int) ([]*Project, error)
}
