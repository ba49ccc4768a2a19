package handlers

import (
	"fmt"

	"frugalfolio/internal/models"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth and scope middleware.
const (
	UserIDContextKey   = "user_id"
	UsernameContextKey = "username"
	UserRoleContextKey = "user_role"
	IsAdminContextKey  = "is_admin"
	ScopeContextKey    = "scope"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getScopeFromContext returns the scope resolved by the scope middleware.
func getScopeFromContext(c echo.Context) (models.Scope, error) {
	scope, ok := c.Get(ScopeContextKey).(models.Scope)
	if !ok {
		return models.Scope{}, ErrUnauthorized
	}
	if err := scope.Validate(); err != nil {
		return models.Scope{}, err
	}
	return scope, nil
}
