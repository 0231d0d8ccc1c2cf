package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contribution-tracker/internal/database"
	"contribution-tracker/internal/domain"
)

// ProjectRepository реализует хранение проектов в PostgreSQL.
type ProjectRepository struct {
	queries *database.Queries
}

// NewProjectRepository создает новый экземпляр ProjectRepository.
func NewProjectRepository(queries *database.Queries) domain.ProjectRepository {
	return &ProjectRepository{
		queries: queries,
	}
}

// Create сохраняет проект. Повторный вызов с тем же ID возвращает уже сохранённый проект и false.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, bool, error) {
	affected, err := r.queries.InsertProject(ctx, database.InsertProjectParams{
		ProjectID:        project.ID,
		AuthorID:         project.AuthorID,
		Title:            project.Title,
		Description:      project.Description,
		RepoLink:         project.RepoLink,
		DemoLink:         project.DemoLink,
		LinkedinPostLink: project.LinkedInPostLink,
		Status:           string(project.Status),
		CreatedAt:        project.CreatedAt,
		UpdatedAt:        project.UpdatedAt,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create project: %w", err)
	}

	stored, err := r.GetByID(ctx, project.ID)
	if err != nil {
		return nil, false, err
	}

	return stored, affected > 0, nil
}

// GetByID возвращает проект по ID.
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	row, err := r.queries.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return toDomainProject(row), nil
}

// UpdateStatus меняет статус проекта, только если текущий статус равен oldStatus.
// Пустой feedback сохраняет прежний отзыв администратора.
func (r *ProjectRepository) UpdateStatus(
	ctx context.Context,
	projectID string,
	oldStatus, newStatus domain.ProjectStatus,
	feedback string,
) (*domain.Project, error) {
	row, err := r.queries.UpdateProjectStatus(ctx, database.UpdateProjectStatusParams{
		NewStatus:     string(newStatus),
		AdminFeedback: feedback,
		ProjectID:     projectID,
		OldStatus:     string(oldStatus),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectStatusChanged
		}
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	return toDomainProject(row), nil
}

// ListByAuthor возвращает до limit последних проектов автора.
func (r *ProjectRepository) ListByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Project, error) {
	rows, err := r.queries.ListProjectsByAuthor(ctx, database.ListProjectsByAuthorParams{
		AuthorID: authorID,
		Limit:    int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list author projects: %w", err)
	}

	return toDomainProjects(rows), nil
}

// ListByStatus возвращает до limit последних проектов в статусе status; StatusNone - в любом.
func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.ProjectStatus, limit int) ([]*domain.Project, error) {
	var (
		rows []database.Project
		err  error
	)
	if status == domain.StatusNone {
		rows, err = r.queries.ListProjects(ctx, int32(limit))
	} else {
		rows, err = r.queries.ListProjectsByStatus(ctx, database.ListProjectsByStatusParams{
			Status: string(status),
			Limit:  int32(limit),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return toDomainProjects(rows), nil
}

func toDomainProjects(rows []database.Project) []*domain.Project {
	result := make([]*domain.Project, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainProject(row))
	}
	return result
}

func toDomainProject(row database.Project) *domain.Project {
	return &domain.Project{
		ID:               row.ProjectID,
		AuthorID:         row.AuthorID,
		Title:            row.Title,
		Description:      row.Description,
		RepoLink:         row.RepoLink,
		DemoLink:         row.DemoLink,
		LinkedInPostLink: row.LinkedinPostLink,
		Status:           domain.ProjectStatus(row.Status),
		AdminFeedback:    row.AdminFeedback,
		CreatedAt:        row.CreatedAt.UTC(),
		UpdatedAt:        row.UpdatedAt.UTC(),
	}
}
