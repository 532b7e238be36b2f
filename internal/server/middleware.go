package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, reusing the caller's when supplied
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)
		c.SetUserContext(logging.ContextWithRequestID(c.UserContext(), requestID))
		c.Locals("request_id", requestID)

		return c.Next()
	}
}

// GetRequestIDFromContext returns the id stored by RequestIDMiddleware
func GetRequestIDFromContext(c *fiber.Ctx) string {
	if requestID, ok := c.Locals("request_id").(string); ok {
		return requestID
	}
	return ""
}

// LoggerMiddleware writes one access log line per request
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// render now so the logged status matches what the client receives
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		logger := logging.GetLogger().With("request_id", GetRequestIDFromContext(c))
		logFunc := logger.Info
		if status >= 500 {
			logFunc = logger.Error
		} else if status >= 400 {
			logFunc = logger.Warn
		}

		logFunc("request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.IP(),
			"bytes", len(c.Response().Body()),
		)

		return nil
	}
}

// CorsMiddleware allows the configured origins to call the API from a browser
func CorsMiddleware(origins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS,HEAD",
		AllowHeaders:  "Origin,Content-Type,Accept," + RequestIDHeader,
		ExposeHeaders: RequestIDHeader,
	})
}

// ErrorHandler renders any error returned by a handler as an ErrorBody
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			return ErrorResponse(c, e.Code, fiberErrorCode(e.Code), e.Message, nil)
		}

		attrs := []any{"error", err, "path", c.Path()}
		if appErr, ok := errors.AsAppError(err); ok {
			attrs = append(attrs, appErr.LogAttrs()...)
		}

		if errors.ShouldLogError(err) {
			logging.ErrorContext(c.UserContext(), "request failed", attrs...)
		} else {
			logging.DebugContext(c.UserContext(), "request rejected", attrs...)
		}
		return AppErrorResponse(c, err)
	}
}
