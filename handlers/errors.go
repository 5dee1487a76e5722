package handlers

import (
	"errors"
	"net/http"
	"strings"

	"marketing_site_go/models"

	"github.com/labstack/echo/v4"
)

// APIErrorHandler renders errors under /api in the {success, message} envelope.
// Page routes fall through to echo's default handler.
func APIErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if !strings.HasPrefix(c.Request().URL.Path, "/api/") {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := models.ContactFailureMessage

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if code < http.StatusInternalServerError {
				if m, ok := he.Message.(string); ok {
					message = m
				} else {
					message = http.StatusText(code)
				}
			}
		}

		if code >= http.StatusInternalServerError {
			c.Logger().Errorf("Unexpected fault on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}

		if err := c.JSON(code, models.ContactResponse{Success: false, Message: message}); err != nil {
			c.Logger().Errorf("Failed to write error response: %v", err)
		}
	}
}
