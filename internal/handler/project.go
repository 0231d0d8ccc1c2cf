package handler

import (
	"net/http"

	"contribution-tracker/api"
	"contribution-tracker/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ProjectHandler обрабатывает HTTP-запросы, связанные с проектами
type ProjectHandler struct {
	*BaseHandler
	projectUseCase domain.ProjectUseCase
}

// NewProjectHandler создает новый экземпляр ProjectHandler
func NewProjectHandler(projectUseCase domain.ProjectUseCase, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    NewBaseHandler(logger),
		projectUseCase: projectUseCase,
	}
}

// PostProjects обрабатывает отправку проекта на модерацию
func (h *ProjectHandler) PostProjects(c echo.Context) error {
	logEntry := h.logRequest(c, "create_project")

	identity, err := requireIdentity(c)
	if err != nil {
		logEntry.Warn("Missing identity")
		return respondError(c, err)
	}

	var req api.PostProjectsJSONBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind create project request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	project := &domain.Project{
		ID:               derefString(req.ProjectId),
		AuthorID:         identity.UserID,
		Title:            req.Title,
		Description:      derefString(req.Description),
		RepoLink:         derefString(req.RepoLink),
		DemoLink:         derefString(req.DemoLink),
		LinkedInPostLink: derefString(req.LinkedinPostLink),
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"user_id":    identity.UserID,
		"project_id": project.ID,
	})
	logEntry.Info("Creating project")

	created, stats, err := h.projectUseCase.CreateProject(c.Request().Context(), project)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create project")
		return respondError(c, err)
	}

	logEntry.WithField("project_id", created.ID).Info("Project created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"project": toAPIProject(created),
		"stats":   toAPIUserStats(stats),
	})
}

// PutProjectsProjectIdStatus обрабатывает смену статуса проекта администратором
func (h *ProjectHandler) PutProjectsProjectIdStatus(c echo.Context, projectId string) error {
	logEntry := h.logRequest(c, "update_project_status").WithField("project_id", projectId)

	if _, err := requireAdmin(c); err != nil {
		logEntry.WithError(err).Warn("Admin role required")
		return respondError(c, err)
	}

	var req api.PutProjectsProjectIdStatusJSONBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind update status request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("status", req.Status)
	logEntry.Info("Updating project status")

	project, stats, err := h.projectUseCase.UpdateProjectStatus(
		c.Request().Context(),
		projectId,
		domain.ProjectStatus(req.Status),
		derefString(req.AdminFeedback),
	)
	if err != nil {
		logEntry.WithError(err).Error("Failed to update project status")
		return respondError(c, err)
	}

	logEntry.WithField("author_id", project.AuthorID).Info("Project status updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"project": toAPIProject(project),
		"stats":   toAPIUserStats(stats),
	})
}

// GetProjects возвращает публичную витрину одобренных проектов
func (h *ProjectHandler) GetProjects(c echo.Context) error {
	logEntry := h.logRequest(c, "list_approved_projects")

	projects, err := h.projectUseCase.ListApprovedProjects(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list approved projects")
		return respondError(c, err)
	}

	logEntry.WithField("count", len(projects)).Info("Approved projects retrieved successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": toAPIProjects(projects),
	})
}

// GetProjectsMy возвращает проекты текущего пользователя
func (h *ProjectHandler) GetProjectsMy(c echo.Context) error {
	logEntry := h.logRequest(c, "list_my_projects")

	identity, err := requireIdentity(c)
	if err != nil {
		logEntry.Warn("Missing identity")
		return respondError(c, err)
	}

	logEntry = logEntry.WithField("user_id", identity.UserID)
	projects, err := h.projectUseCase.ListMyProjects(c.Request().Context(), identity.UserID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list user projects")
		return respondError(c, err)
	}

	logEntry.WithField("count", len(projects)).Info("User projects retrieved successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": toAPIProjects(projects),
	})
}

// GetAdminProjects возвращает проекты для модерации, опционально по статусу
func (h *ProjectHandler) GetAdminProjects(c echo.Context, params api.GetAdminProjectsParams) error {
	logEntry := h.logRequest(c, "list_projects")

	if _, err := requireAdmin(c); err != nil {
		logEntry.WithError(err).Warn("Admin role required")
		return respondError(c, err)
	}

	status := domain.StatusNone
	if params.Status != nil {
		status = domain.ProjectStatus(*params.Status)
	}
	logEntry = logEntry.WithField("status", status)

	projects, err := h.projectUseCase.ListProjects(c.Request().Context(), status)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list projects")
		return respondError(c, err)
	}

	logEntry.WithField("count", len(projects)).Info("Projects retrieved successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": toAPIProjects(projects),
	})
}
