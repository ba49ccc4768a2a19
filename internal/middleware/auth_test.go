package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frugalfolio/internal/config"
	"frugalfolio/internal/errors"
	"frugalfolio/internal/handlers"
	"frugalfolio/internal/models"
	"frugalfolio/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	audit        services.AuditLoggerInterface
	auditLog     *bytes.Buffer
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.newTokenService(time.Hour)
	s.auditLog = &bytes.Buffer{}
	s.audit = services.NewAuditLogger(slog.New(slog.NewJSONHandler(s.auditLog, nil)))
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) newTokenService(ttl time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: ttl,
	})
}

func (s *AuthMiddlewareSuite) token(svc services.TokenServiceInterface, user *models.User) string {
	token, _, err := svc.GenerateAccessToken(user)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, req *http.Request, next echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	s.Require().NoError(mw(next)(c))
	return rec
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidTokenSetsIdentity() {
	user := &models.User{ID: uuid.New(), Username: "maria", Role: models.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s.token(s.tokenService, user))

	var called bool
	rec := s.serve(RequireAuth(s.tokenService), req, func(c echo.Context) error {
		called = true
		s.Equal(user.ID, c.Get(handlers.UserIDContextKey))
		s.Equal("maria", c.Get(handlers.UsernameContextKey))
		s.Equal(models.RoleAdmin, c.Get(handlers.UserRoleContextKey))
		s.Equal(true, c.Get(handlers.IsAdminContextKey))
		return c.NoContent(http.StatusOK)
	})

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := s.serve(RequireAuth(s.tokenService), req, func(c echo.Context) error {
		s.Fail("next must not run")
		return nil
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")

	rec := s.serve(RequireAuth(s.tokenService), req, func(c echo.Context) error { return nil })

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromOtherKey() {
	other := s.newTokenService(time.Hour)
	user := &models.User{ID: uuid.New(), Username: "eve", Role: models.RoleUser}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s.token(other, user))

	rec := s.serve(RequireAuth(s.tokenService), req, func(c echo.Context) error { return nil })

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expiring := s.newTokenService(-time.Minute)
	user := &models.User{ID: uuid.New(), Username: "late", Role: models.RoleUser}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s.token(expiring, user))

	rec := s.serve(RequireAuth(expiring), req, func(c echo.Context) error { return nil })

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) scopeRequest(query string, caller uuid.UUID, isAdmin bool) (*httptest.ResponseRecorder, *models.Scope) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard"+query, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	if caller != uuid.Nil {
		c.Set(handlers.UserIDContextKey, caller)
	}
	c.Set(handlers.IsAdminContextKey, isAdmin)

	var resolved *models.Scope
	err := ResolveScope(s.audit)(func(c echo.Context) error {
		scope := c.Get(handlers.ScopeContextKey).(models.Scope)
		resolved = &scope
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)
	return rec, resolved
}

func (s *AuthMiddlewareSuite) TestResolveScope_UserDefaultsToSelf() {
	caller := uuid.New()
	rec, scope := s.scopeRequest("", caller, false)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(scope)
	s.Equal(models.UserScope(caller), *scope)
	s.Empty(s.auditLog.String())
}

func (s *AuthMiddlewareSuite) TestResolveScope_UserMayNameThemselves() {
	caller := uuid.New()
	_, scope := s.scopeRequest("?userId="+caller.String(), caller, false)

	s.Require().NotNil(scope)
	s.Equal(models.UserScope(caller), *scope)
	s.Empty(s.auditLog.String())
}

func (s *AuthMiddlewareSuite) TestResolveScope_UserCannotNameSomeoneElse() {
	rec, scope := s.scopeRequest("?userId="+uuid.NewString(), uuid.New(), false)

	s.Nil(scope)
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal(string(errors.AuthInsufficientPermission), s.errorCode(rec))
	s.Contains(s.auditLog.String(), `"event_type":"scope_denied"`)
}

func (s *AuthMiddlewareSuite) TestResolveScope_AdminDefaultsToAllUsers() {
	_, scope := s.scopeRequest("", uuid.New(), true)

	s.Require().NotNil(scope)
	s.True(scope.AllUsers)
	s.Contains(s.auditLog.String(), `"event_type":"scope_access"`)
	s.Contains(s.auditLog.String(), `"scope":"all"`)
}

func (s *AuthMiddlewareSuite) TestResolveScope_AdminMayNarrowToOneUser() {
	target := uuid.New()
	_, scope := s.scopeRequest("?userId="+target.String(), uuid.New(), true)

	s.Require().NotNil(scope)
	s.Equal(models.UserScope(target), *scope)
	s.Contains(s.auditLog.String(), target.String())
}

func (s *AuthMiddlewareSuite) TestResolveScope_InvalidUserID() {
	rec, scope := s.scopeRequest("?userId=not-a-uuid", uuid.New(), true)

	s.Nil(scope)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidUserID), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestResolveScope_RequiresAuthenticatedCaller() {
	rec, scope := s.scopeRequest("", uuid.Nil, false)

	s.Nil(scope)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
