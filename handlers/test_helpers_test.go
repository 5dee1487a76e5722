package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketing_site_go/config"

	"github.com/labstack/echo/v4"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		SiteName:       "Northwind Studio",
		AllowedOrigins: []string{"*"},
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// stubSleep records requested delays instead of waiting
func stubSleep(t *testing.T) *[]time.Duration {
	var calls []time.Duration
	old := sleep
	sleep = func(d time.Duration) { calls = append(calls, d) }
	t.Cleanup(func() { sleep = old })
	return &calls
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
