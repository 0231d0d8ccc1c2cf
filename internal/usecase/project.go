package usecase

import (
	"context"
	"errors"
	"strings"

	"contribution-tracker/internal/domain"

	"github.com/google/uuid"
)

const (
	// PublicProjectsLimit - размер публичной витрины одобренных проектов.
	PublicProjectsLimit = 20
	// ProjectsPageLimit - предел выдачи собственных и административных списков.
	ProjectsPageLimit = 100
)

// ProjectUseCase реализует бизнес-логику проектов и их влияние на счётчики.
type ProjectUseCase struct {
	projectRepo domain.ProjectRepository
	store       *StatsStore
	clock       domain.Clock
}

// NewProjectUseCase создает новый экземпляр ProjectUseCase.
func NewProjectUseCase(projectRepo domain.ProjectRepository, store *StatsStore, clock domain.Clock) domain.ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		store:       store,
		clock:       clock,
	}
}

// CreateProject сохраняет проект в статусе pending и увеличивает total и pending автора.
func (uc *ProjectUseCase) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, *domain.UserStats, error) {
	// Валидация
	if project.AuthorID == "" {
		return nil, nil, domain.ErrInvalidUserID
	}
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return nil, nil, domain.ErrInvalidProjectTitle
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	now := uc.clock.Now()
	project.Status = domain.StatusPending
	project.CreatedAt = now
	project.UpdatedAt = now

	// 1. Сохраняем проект; повторный запрос вернёт уже сохранённую запись
	stored, _, err := uc.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, nil, err
	}
	if stored.AuthorID != project.AuthorID {
		return nil, nil, domain.ErrProjectAlreadyExists
	}

	// 2. Учитываем проект в счётчиках автора
	delta, err := domain.StatusDelta(domain.StatusNone, domain.StatusPending)
	if err != nil {
		return nil, nil, err
	}
	stats, err := uc.store.Apply(ctx, stored.AuthorID, domain.ProjectCreatedEvent(stored.ID), applyDelta(delta))
	if err != nil {
		return nil, nil, err
	}

	return stored, stats, nil
}

// ChangeProjectStatus переносит проект автора userID из oldStatus в newStatus в счётчиках.
// Одинаковые статусы не доходят до записи.
func (uc *ProjectUseCase) ChangeProjectStatus(
	ctx context.Context,
	projectID, userID string,
	oldStatus, newStatus domain.ProjectStatus,
) (*domain.UserStats, error) {
	if projectID == "" {
		return nil, domain.ErrInvalidProjectID
	}
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if !oldStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	delta, err := domain.StatusDelta(oldStatus, newStatus)
	if err != nil {
		return nil, err
	}
	if delta.IsZero() {
		return uc.store.Current(ctx, userID)
	}

	return uc.store.Apply(ctx, userID, domain.ProjectTransitionEvent(projectID, oldStatus, newStatus), applyDelta(delta))
}

// UpdateProjectStatus выполняет административную смену статуса: счётчики автора,
// затем сама запись проекта при неизменном исходном статусе.
func (uc *ProjectUseCase) UpdateProjectStatus(
	ctx context.Context,
	projectID string,
	newStatus domain.ProjectStatus,
	feedback string,
) (*domain.Project, *domain.UserStats, error) {
	if projectID == "" {
		return nil, nil, domain.ErrInvalidProjectID
	}
	if !newStatus.Valid() {
		return nil, nil, domain.ErrInvalidStatus
	}

	// 1. Получаем проект и его текущий статус
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	// 2. Обновляем счётчики автора; повтор после сбоя на шаге 3 не применится дважды
	stats, err := uc.ChangeProjectStatus(ctx, project.ID, project.AuthorID, project.Status, newStatus)
	if err != nil {
		return nil, nil, err
	}

	if project.Status == newStatus && feedback == "" {
		return project, stats, nil
	}

	// 3. Сохраняем статус проекта
	updated, err := uc.projectRepo.UpdateStatus(ctx, project.ID, project.Status, newStatus, feedback)
	if errors.Is(err, domain.ErrProjectStatusChanged) {
		// Параллельный одинаковый запрос уже довёл проект до нужного статуса
		current, getErr := uc.projectRepo.GetByID(ctx, project.ID)
		if getErr != nil {
			return nil, nil, getErr
		}
		if current.Status != newStatus {
			return nil, nil, err
		}
		return current, stats, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return updated, stats, nil
}

// ListMyProjects возвращает проекты пользователя, новые первыми.
func (uc *ProjectUseCase) ListMyProjects(ctx context.Context, userID string) ([]*domain.Project, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	return uc.projectRepo.ListByAuthor(ctx, userID, ProjectsPageLimit)
}

// ListApprovedProjects возвращает публичную витрину одобренных проектов.
func (uc *ProjectUseCase) ListApprovedProjects(ctx context.Context) ([]*domain.Project, error) {
	return uc.projectRepo.ListByStatus(ctx, domain.StatusApproved, PublicProjectsLimit)
}

// ListProjects возвращает проекты для модерации, при пустом статусе - в любом статусе.
func (uc *ProjectUseCase) ListProjects(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	if status != domain.StatusNone && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return uc.projectRepo.ListByStatus(ctx, status, ProjectsPageLimit)
}

func applyDelta(delta domain.CounterDelta) StatsTransform {
	return func(s *domain.UserStats) (bool, error) {
		if err := delta.ApplyTo(&s.ProjectCounters); err != nil {
			return false, err
		}
		return true, nil
	}
}
