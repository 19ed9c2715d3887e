package http

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/observability"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/ratelimit"
	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares. Order matters: the
// request logger wraps error handling so it records the final status.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(cors.New())
	app.Use(requestIDMiddleware())
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request().Header.Set("X-Request-ID", requestID)
		}
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

func rateLimitMiddleware(limiter *ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow(c.Context(), c.IP()) {
			return apperrors.NewRateLimited("too many submissions, try again later")
		}
		return c.Next()
	}
}
