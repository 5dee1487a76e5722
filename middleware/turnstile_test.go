package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestTurnstile(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	run := func(mw echo.MiddlewareFunc, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		if token != "" {
			req.Header.Set(TurnstileHeader, token)
		}
		rec := httptest.NewRecorder()
		assert.NoError(t, mw(ok)(e.NewContext(req, rec)))
		return rec
	}

	t.Run("DisabledWithoutSecret", func(t *testing.T) {
		called := false
		verify := func(ctx context.Context, token, secret, ip string) (bool, error) {
			called = true
			return false, nil
		}
		rec := run(Turnstile("", verify), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
	})

	t.Run("MissingToken", func(t *testing.T) {
		rec := run(Turnstile("secret", nil), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please complete the CAPTCHA")
	})

	t.Run("VerificationFailed", func(t *testing.T) {
		verify := func(ctx context.Context, token, secret, ip string) (bool, error) {
			return false, errors.New("invalid-input-response")
		}
		rec := run(Turnstile("secret", verify), "bad-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "CAPTCHA verification failed")
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("VerificationPassed", func(t *testing.T) {
		verify := func(ctx context.Context, token, secret, ip string) (bool, error) {
			assert.Equal(t, "good-token", token)
			assert.Equal(t, "secret", secret)
			return true, nil
		}
		rec := run(Turnstile("secret", verify), "good-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
