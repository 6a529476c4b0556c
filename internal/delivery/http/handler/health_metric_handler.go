package handler

import (
	"errors"

	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HealthMetricHandler struct {
	uc usecase.HealthUsecase
}

func NewHealthMetricHandler(uc usecase.HealthUsecase) *HealthMetricHandler {
	return &HealthMetricHandler{uc: uc}
}

func (h *HealthMetricHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/health")
	grp.Post("/metric", h.Record)
	grp.Get("/dashboard", h.Dashboard)
	grp.Get("/worker/:id", h.Recent)
	grp.Get("/worker/:id/latest", h.Latest)
	grp.Get("/worker/:id/summary", h.Summary)
}

func (h *HealthMetricHandler) Record(c fiber.Ctx) error {
	var req dto.RecordMetricRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.RecordMetric(c.Context(), usecase.RecordMetricInput{
		WorkerID:        req.WorkerID,
		HeartRate:       req.HeartRate,
		OxygenLevel:     req.OxygenLevel,
		StressLevel:     req.StressLevel,
		FatigueScore:    req.FatigueScore,
		BodyTemperature: req.BodyTemperature,
		StepsCount:      req.StepsCount,
	})
	if err != nil {
		return healthMetricError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Health metric recorded successfully", dto.FromHealthMetric(created))
}

func (h *HealthMetricHandler) Recent(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	limit := fiber.Query(c, "limit", 20)

	items, err := h.uc.RecentMetrics(c.Context(), workerID, limit)
	if err != nil {
		return healthMetricError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromHealthMetrics(items))
}

func (h *HealthMetricHandler) Latest(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	m, err := h.uc.LatestMetric(c.Context(), workerID)
	if err != nil {
		return healthMetricError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromHealthMetric(m))
}

func (h *HealthMetricHandler) Summary(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	summary, err := h.uc.WorkerSummary(c.Context(), workerID)
	if err != nil {
		return healthMetricError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}

func (h *HealthMetricHandler) Dashboard(c fiber.Ctx) error {
	dash, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return healthMetricError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dash)
}

func healthMetricError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return response.Error(c, fiber.StatusNotFound, "Worker not found", nil)
	case errors.Is(err, usecase.ErrNoHealthData):
		return response.Error(c, fiber.StatusNotFound, "No health data for worker", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
