package handler

import (
	"context"

	"workforce/internal/database"
	"workforce/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness probe. The service is considered up as
// long as the database answers; the cache is reported but never fatal.
type HealthHandler struct {
	db    database.DB
	cache pinger
}

func NewHealthHandler(db database.DB, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	status := fiber.Map{
		"database": "up",
		"cache":    "up",
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			status["database"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, "service unhealthy", status)
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			status["cache"] = "down"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
