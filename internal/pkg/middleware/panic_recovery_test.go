package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return zapLogger
}

func TestPanicRecoveryMiddleware_Recovers(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := PanicRecoveryMiddleware(newTestLogger(t))(func(c echo.Context) error {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestPanicRecoveryMiddleware_PassThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := PanicRecoveryMiddleware(newTestLogger(t))(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
