package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthMissingToken, s.traceID)

	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Authorization token is required", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(ValidationInvalidDate, s.traceID,
		WithDetails("anchorDate: must be YYYY-MM-DD"),
		WithMessage("Bad anchor date"),
	)

	s.Equal("VALIDATION_004", response.Error.Code)
	s.Equal("Bad anchor date", response.Error.Message)
	s.Equal([]string{"anchorDate: must be YYYY-MM-DD"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"userId":     "must be a valid UUID",
		"anchorDate": "must be YYYY-MM-DD",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"anchorDate: must be YYYY-MM-DD", "userId: must be a valid UUID"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	response := NewValidationErrorFromList([]string{"itemName is required"}, s.traceID)
	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Len(response.Error.Details, 1)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	cause := errors.New("pq: relation \"purchases\" does not exist")
	response, err := WrapSystemError(cause, s.traceID)

	s.Equal(cause, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "purchases")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationInvalidUserID, http.StatusBadRequest},
		{AnalyticsInvalidScope, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{SystemNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{AnalyticsStoreUnavailable, http.StatusServiceUnavailable},
		{AnalyticsChartUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
			s.Equal(tc.status, NewErrorResponse(tc.code, s.traceID).GetHTTPStatus())
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	client := NewErrorResponse(ValidationGeneral, s.traceID)
	server := NewErrorResponse(SystemServiceUnavailable, s.traceID)

	s.True(client.IsClientError())
	s.False(client.IsServerError())
	s.True(server.IsServerError())
	s.False(server.IsClientError())
}

func (s *ResponseTestSuite) TestJSONShape() {
	body, err := json.Marshal(NewErrorResponse(AuthMissingToken, s.traceID))
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Equal("AUTH_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.NotContains(decoded["error"], "details", "empty details are omitted")
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(SystemNotFound, s.traceID)
	s.Equal("[SYSTEM_005] Resource not found (trace: "+s.traceID+")", response.String())
}
