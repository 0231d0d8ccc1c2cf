package handler

import (
	"contribution-tracker/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	fields := logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	}
	if identity := IdentityFrom(c); identity != nil {
		fields["caller_id"] = identity.UserID
	}
	return h.logger.WithFields(fields)
}

// requireIdentity возвращает пользователя запроса или ErrUnauthenticated.
func requireIdentity(c echo.Context) (*domain.Identity, error) {
	identity := IdentityFrom(c)
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}

// requireAdmin дополнительно проверяет роль администратора.
func requireAdmin(c echo.Context) (*domain.Identity, error) {
	identity, err := requireIdentity(c)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return identity, nil
}

// respondError отдаёт доменную ошибку в формате ErrorResponse.
func respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	return c.JSON(getHTTPStatusCode(err), toErrorResponse("INTERNAL_ERROR", err.Error()))
}
