package app

import (
	"errors"

	"webboot/core/logger"
	"webboot/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorView is the template rendered for failed requests.
const ErrorView = "error"

// RedactedMessage replaces the error message in production responses.
const RedactedMessage = "see log"

// NewErrorHandler returns the error handler for env. Production gets the
// redacted handler, every other environment the verbose one.
func NewErrorHandler(env server.Environment, l *zap.Logger) fiber.ErrorHandler {
	if env.IsProduction() {
		return RedactedErrorHandler(l)
	}
	return VerboseErrorHandler(l)
}

// RedactedErrorHandler renders the error view without any error detail.
func RedactedErrorHandler(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := StatusOf(err)
		logError(l, c, status, err)
		return renderError(c, status, RedactedMessage, "")
	}
}

// VerboseErrorHandler renders the error view with the message and error text.
func VerboseErrorHandler(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := StatusOf(err)
		logError(l, c, status, err)

		message := err.Error()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			message = fe.Message
		}
		return renderError(c, status, message, err.Error())
	}
}

// StatusOf returns the status carried by err, 500 when it carries none.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func logError(l *zap.Logger, c *fiber.Ctx, status int, err error) {
	logger.WithRayID(l, c).Error("Request failed",
		zap.Error(err),
		zap.Int("status", status),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	)
}

func renderError(c *fiber.Ctx, status int, message, detail string) error {
	c.Status(status)
	err := c.Render(ErrorView, fiber.Map{
		"Status":  status,
		"Message": message,
		"Error":   detail,
	})
	if err == nil {
		return nil
	}

	// Without a usable view the client still gets the status and message.
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(message)
}
