package middleware

import (
	"time"

	"availability-api/core/constants"
	"availability-api/core/logger"
	"availability-api/core/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Middleware bundles the cross-cutting echo middlewares. There is no auth
// middleware: the service trusts its callers to identify the acting user.
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// RequestID stamps each request with a short ID, reusing the caller's
// X-Request-ID when present.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(constants.HeaderRequestID)
			if id == "" {
				id = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set(constants.HeaderRequestID, id)
			return next(c)
		}
	}
}

// RequestLogger logs one line per request with latency and status.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			requestID, _ := c.Get(constants.ContextRequestID).(string)
			logger.Info("http request",
				"request_id", requestID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

func (m *Middleware) CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
	})
}

func (m *Middleware) Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}
