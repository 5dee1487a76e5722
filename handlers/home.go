package handlers

import (
	"net/http"

	"marketing_site_go/config"
	"marketing_site_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the single marketing page with its contact modal.
// The CSP nonce reaches the template through the request context.
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	page := pages.DefaultLandingPage(cfg.SiteName)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return pages.Landing(page).Render(c.Request().Context(), c.Response().Writer)
}

// HealthHandler reports liveness for load balancers
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
