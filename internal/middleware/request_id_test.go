package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// run executes RequestID with an optional inbound header and returns the
// trace ID the handler saw.
func (s *RequestIDTestSuite) run(inbound string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(TraceIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)
	return seen, rec
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	traceID, rec := s.run("")

	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReusesInboundTraceID() {
	traceID, rec := s.run("existing-trace-id-12345")

	s.Equal("existing-trace-id-12345", traceID)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_RejectsUnsafeInboundTraceIDs() {
	for name, inbound := range map[string]string{
		"too long":   strings.Repeat("a", maxTraceIDLength+1),
		"whitespace": "trace id",
		"non ascii":  "trace-ü",
	} {
		s.Run(name, func() {
			traceID, _ := s.run(inbound)
			s.NotEqual(inbound, traceID)
			_, err := uuid.Parse(traceID)
			s.NoError(err)
		})
	}
}

func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _ := s.run("")
	second, _ := s.run("")
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_OutsideMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
