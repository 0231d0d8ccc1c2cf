package handler

import (
	"net/http"
	"strings"

	"contribution-tracker/internal/domain"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderUserID и HeaderUserRole выставляются шлюзом аутентификации.
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	identityContextKey = "identity"
)

// IdentityProvider определяет пользователя по входящему запросу.
type IdentityProvider interface {
	Identify(r *http.Request) (*domain.Identity, error)
}

// HeaderIdentityProvider доверяет заголовкам, проставленным вышестоящим шлюзом.
type HeaderIdentityProvider struct{}

// Identify читает X-User-ID и X-User-Role. Неизвестная роль считается ролью участника.
func (HeaderIdentityProvider) Identify(r *http.Request) (*domain.Identity, error) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	role := domain.RoleMember
	if strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderUserRole)), domain.RoleAdmin) {
		role = domain.RoleAdmin
	}

	return &domain.Identity{UserID: userID, Role: role}, nil
}

// IdentityMiddleware сохраняет пользователя запроса в контексте echo.
// Запрос без пользователя проходит дальше; обработчики сами требуют идентификацию.
func IdentityMiddleware(provider IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if identity, err := provider.Identify(c.Request()); err == nil {
				c.Set(identityContextKey, identity)
			}
			return next(c)
		}
	}
}

// IdentityFrom возвращает пользователя, сохранённый IdentityMiddleware, или nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityContextKey).(*domain.Identity)
	return identity
}
