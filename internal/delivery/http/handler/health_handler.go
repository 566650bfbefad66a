package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/neighborhood-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, доступность которой проверяет readiness
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - liveness и readiness проверки
type HealthHandler struct {
	db      HealthChecker
	timeout time.Duration
	logger  *zap.Logger
}

func NewHealthHandler(db HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		timeout: 3 * time.Second,
		logger:  logger,
	}
}

// Health godoc
// @Summary Liveness
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready godoc
// @Summary Readiness
// @Description Проверяет соединение с пространственной БД
// @Tags Health
// @Produce json
// @Success 200 {object} dto.ReadyResponse
// @Failure 503 {object} dto.ReadyResponse
// @Router /api/ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	checks := map[string]string{}
	status, code := "ready", fiber.StatusOK

	if h.db == nil {
		checks["database"] = "not configured"
		status, code = "not ready", fiber.StatusServiceUnavailable
	} else if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("Readiness check failed", zap.String("dependency", "database"), zap.Error(err))
		checks["database"] = "unavailable"
		status, code = "not ready", fiber.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	return c.Status(code).JSON(dto.ReadyResponse{
		Status: status,
		Checks: checks,
	})
}
