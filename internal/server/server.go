// Package server exposes the parsing session over HTTP.
package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/export"
	"github.com/mazohq/beam-parser/internal/history"
	"github.com/mazohq/beam-parser/internal/session"
)

// Server wires the session, exporter and history store behind a fiber app.
type Server struct {
	cfg     common.Config
	session *session.Session
	export  *export.Service
	history *history.Store
	logger  *slog.Logger
	app     *fiber.App
}

func New(cfg common.Config, sess *session.Session, exporter *export.Service, store *history.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, session: sess, export: exporter, history: store, logger: logger}

	app := fiber.New(fiber.Config{
		AppName:      "beam-parser",
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    100 * 1024 * 1024,
		ErrorHandler: s.errorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "time": time.Now().UTC()})
	})
	api.Post("/job-descriptions", s.handleUploadJobDescriptions)
	api.Post("/resumes", s.handleUploadResumes)
	api.Get("/session", s.handleGetSession)
	api.Delete("/session", s.handleClearSession)
	api.Post("/reports", s.handleGenerateReport)
	api.Get("/history", s.handleListHistory)
	api.Get("/history/:id/report", s.handleHistoryReport)
	api.Delete("/history/:id", s.handleDeleteHistory)

	s.app = app
	return s
}

// Listen blocks serving HTTP until Shutdown is called.
func (s *Server) Listen() error {
	s.logger.Info("server.listen", "addr", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler maps the error taxonomy onto HTTP statuses. Validation
// failures (caps, bad uploads) are the client's fault; missing history
// records are 404; everything else is a 500.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		code = fiber.StatusNotFound
	default:
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
	}

	message := err.Error()
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if code >= 500 {
		s.logger.Error("server.error", "path", c.Path(), "status", code, "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": message, "code": code})
}
