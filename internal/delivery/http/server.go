package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/neighborhood-gateway/internal/config"
	"github.com/neighborhood-gateway/internal/delivery/http/handler"
	"github.com/neighborhood-gateway/internal/delivery/http/middleware"
	pkgerrors "github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/neighborhood-gateway/internal/pkg/metrics"
	"github.com/neighborhood-gateway/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	geocodeHandler      *handler.GeocodeHandler
	poiHandler          *handler.POIHandler
	neighborhoodHandler *handler.NeighborhoodHandler
	healthHandler       *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	geocodeHandler *handler.GeocodeHandler,
	poiHandler *handler.POIHandler,
	neighborhoodHandler *handler.NeighborhoodHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Neighborhood Gateway",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		geocodeHandler:      geocodeHandler,
		poiHandler:          poiHandler,
		neighborhoodHandler: neighborhoodHandler,
		healthHandler:       healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.AccessLog(s.logger))
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())

	api := s.app.Group("/api")

	api.Get("/health", s.healthHandler.Health)
	api.Get("/ready", s.healthHandler.Ready)

	api.Get("/geocode", s.geocodeHandler.Geocode)
	api.Get("/coffee/find", s.poiHandler.FindCoffee)
	api.Get("/neighborhoods/find", s.neighborhoodHandler.FindNeighborhood)
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера: новые соединения не принимаются,
// активные запросы дорабатывают до отмены ctx
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404, 405, паника).
// Тело всегда {error: string}; детали 5xx клиенту не отдаются.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := pkgerrors.ErrInternalServer.Message

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
			if code < fiber.StatusInternalServerError {
				message = fe.Message
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", fiberutils.CopyString(c.Path())),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{Error: message})
	}
}
