package handler

import (
	"contribution-tracker/api"
	"contribution-tracker/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*ContributionHandler
	*ProjectHandler
	*StatsHandler
}

func NewAPIHandler(
	contributionUseCase domain.ContributionUseCase,
	projectUseCase domain.ProjectUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		ContributionHandler: NewContributionHandler(contributionUseCase, logger),
		ProjectHandler:      NewProjectHandler(projectUseCase, logger),
		StatsHandler:        NewStatsHandler(statsUseCase, logger),
	}
}
