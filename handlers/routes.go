package handlers

import (
	"marketing_site_go/config"
	"marketing_site_go/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// NewRouter builds the echo app with middleware and routes.
// The returned cleanup stops background work owned by the router.
func NewRouter(cfg *config.Config) (*echo.Echo, func()) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = APIErrorHandler(e)
	if cfg.IsProduction() {
		e.Logger.SetLevel(log.WARN)
	} else {
		e.Logger.SetLevel(log.INFO)
	}

	// Middleware
	if cfg.RequestLogging {
		e.Use(echomiddleware.RequestLogger())
	}
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.GET("/", LandingHandler, middleware.CSPNonce())
	e.GET("/healthz", HealthHandler)

	contactMiddleware := []echo.MiddlewareFunc{
		middleware.Turnstile(cfg.TurnstileSecretKey, nil),
	}
	cleanup := func() {}
	if rl := middleware.NewContactRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow); rl != nil {
		contactMiddleware = append([]echo.MiddlewareFunc{rl.Middleware()}, contactMiddleware...)
		cleanup = rl.Close
	}
	e.POST("/api/contact", ContactHandler, contactMiddleware...)

	return e, cleanup
}
