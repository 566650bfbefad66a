package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessLog - структурированный лог каждого запроса.
// Строка запроса не пишется: в ней может быть адрес пользователя.
func AccessLog(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		fields := []zap.Field{
			// Method и Path ссылаются на буферы fasthttp, которые переиспользуются
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("bytes_out", len(c.Response().Body())),
			zap.String("request_id", utils.CopyString(c.GetRespHeader(fiber.HeaderXRequestID))),
		}

		level := zapcore.InfoLevel
		switch {
		case err != nil || status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		if ce := logger.Check(level, "HTTP request"); ce != nil {
			ce.Write(fields...)
		}

		return err
	}
}
