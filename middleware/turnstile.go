package middleware

import (
	"context"
	"net/http"

	"marketing_site_go/models"
	"marketing_site_go/services"

	"github.com/labstack/echo/v4"
)

// TurnstileHeader carries the CAPTCHA token on JSON submissions
const TurnstileHeader = "CF-Turnstile-Response"

// TurnstileVerifier checks a CAPTCHA token for the given client IP
type TurnstileVerifier func(ctx context.Context, token, secretKey, ip string) (bool, error)

// Turnstile rejects requests without a valid Cloudflare Turnstile token.
// An empty secret key disables the check.
func Turnstile(secretKey string, verify TurnstileVerifier) echo.MiddlewareFunc {
	if verify == nil {
		verify = services.VerifyTurnstileToken
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if secretKey == "" {
			return next
		}
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TurnstileHeader)
			if token == "" {
				return c.JSON(http.StatusBadRequest, models.ContactResponse{
					Success: false,
					Message: "Please complete the CAPTCHA",
				})
			}

			ok, err := verify(c.Request().Context(), token, secretKey, c.RealIP())
			if err != nil || !ok {
				c.Logger().Warnf("Turnstile verification failed: %v", err)
				return c.JSON(http.StatusBadRequest, models.ContactResponse{
					Success: false,
					Message: "CAPTCHA verification failed",
				})
			}

			return next(c)
		}
	}
}
