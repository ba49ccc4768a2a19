package handlers

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"frugalfolio/internal/dto"
	"frugalfolio/internal/errors"
	"frugalfolio/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(TraceIDContextKey, "trace-responses")
	return c, rec
}

func TestSendValidationError_FieldErrors(t *testing.T) {
	c, rec := newTestContext()
	err := NewValidator().Validate(dto.ItemInsightQuery{})

	require.NoError(t, SendValidationError(c, err))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "itemName: is required")
	assert.Contains(t, rec.Body.String(), "trace-responses")
}

func TestSendValidationError_PlainError(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, SendValidationError(c, stderrors.New("boom")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request parameters")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestSendSystemError_HidesCause(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, SendSystemError(c, stderrors.New("pq: password authentication failed")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), string(errors.SystemInternalError))
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetScopeFromContext(t *testing.T) {
	c, _ := newTestContext()
	_, err := getScopeFromContext(c)
	assert.ErrorIs(t, err, ErrUnauthorized)

	c.Set(ScopeContextKey, models.Scope{})
	_, err = getScopeFromContext(c)
	assert.ErrorIs(t, err, models.ErrInvalidScope)

	scope := models.UserScope(uuid.New())
	c.Set(ScopeContextKey, scope)
	got, err := getScopeFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, scope, got)
}
