package middleware

import (
	stderrors "errors"

	"frugalfolio/internal/errors"
	"frugalfolio/internal/handlers"
	"frugalfolio/internal/models"
	"frugalfolio/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth requires a valid RS256 access token and stores the caller's
// identity on the context.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.UsernameContextKey, claims.Username)
			c.Set(handlers.UserRoleContextKey, claims.Role)
			c.Set(handlers.IsAdminContextKey, claims.Role == models.RoleAdmin)

			return next(c)
		}
	}
}

// ResolveScope turns the authenticated caller and the optional userId query
// parameter into the analytics scope. Admins see every user unless they name
// one; everyone else sees only their own purchases. Reads that cross a user
// boundary, allowed or not, go to the audit log.
func ResolveScope(audit services.AuditLoggerInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID, ok := c.Get(handlers.UserIDContextKey).(uuid.UUID)
			if !ok || callerID == uuid.Nil {
				return handlers.SendError(c, errors.AuthMissingToken)
			}
			isAdmin, _ := c.Get(handlers.IsAdminContextKey).(bool)

			requested := c.QueryParam("userId")
			var target uuid.UUID
			if requested != "" {
				parsed, err := uuid.Parse(requested)
				if err != nil {
					return handlers.SendError(c, errors.ValidationInvalidUserID, errors.WithDetails("userId: must be a valid UUID"))
				}
				target = parsed
			}

			ctx := c.Request().Context()
			path := c.Request().URL.Path

			var scope models.Scope
			switch {
			case isAdmin && target == uuid.Nil:
				scope = models.AllUsersScope()
			case isAdmin:
				scope = models.UserScope(target)
			case target == uuid.Nil || target == callerID:
				scope = models.UserScope(callerID)
			default:
				audit.LogScopeDenied(ctx, GetTraceID(c), callerID, target, path)
				return handlers.SendError(c, errors.AuthInsufficientPermission,
					errors.WithDetails("Only administrators can view another user's purchases"))
			}

			if scope.AllUsers || scope.UserID != callerID {
				audit.LogScopeAccess(ctx, GetTraceID(c), callerID, scope, path)
			}

			c.Set(handlers.ScopeContextKey, scope)
			return next(c)
		}
	}
}
