package accesslog

import (
	"time"

	"webboot/core/logger"
	"webboot/core/middleware/realip"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MinStatus is the lowest response status that gets logged.
const MinStatus = fiber.StatusBadRequest

// New returns a middleware that writes one entry to l for every request
// finishing with a status of MinStatus or above.
//
// Errors returned by later handlers are passed to the application error
// handler here, so the entry carries the final status.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		if status < MinStatus {
			return nil
		}

		logger.WithRayID(l, c).Info(c.Method()+" "+c.OriginalURL(),
			zap.String("ip", realip.Get(c)),
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.String("protocol", c.Protocol()),
			zap.Int("status", status),
			zap.Int("bytes", len(c.Response().Body())),
			zap.String("referer", c.Get(fiber.HeaderReferer)),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
