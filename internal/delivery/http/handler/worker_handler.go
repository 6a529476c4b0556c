package handler

import (
	"errors"
	"strconv"

	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type WorkerHandler struct {
	uc usecase.WorkerUsecase
}

func NewWorkerHandler(uc usecase.WorkerUsecase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

func (h *WorkerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/worker")
	grp.Post("/add", h.Create)
	grp.Get("/all", h.List)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *WorkerHandler) Create(c fiber.Ctx) error {
	var req dto.CreateWorkerRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateWorker(c.Context(), usecase.CreateWorkerInput{
		Name:             req.Name,
		Age:              req.Age,
		Experience:       req.Experience,
		Skills:           req.Skills,
		FatigueLevel:     req.FatigueLevel,
		HoursPerDay:      req.HoursPerDay,
		HoursPerWeek:     req.HoursPerWeek,
		CurrentRole:      req.CurrentRole,
		PerformanceScore: req.PerformanceScore,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusCreated, "Worker created successfully", dto.FromWorker(created))
}

func (h *WorkerHandler) List(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 100)
	offset := fiber.Query(c, "offset", 0)

	items, err := h.uc.ListWorkers(c.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromWorkers(items))
}

func (h *WorkerHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	w, err := h.uc.GetWorker(c.Context(), id)
	if err != nil {
		return workerError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromWorker(w))
}

func (h *WorkerHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req dto.UpdateWorkerRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateWorker(c.Context(), id, usecase.UpdateWorkerInput{
		Name:             req.Name,
		Age:              req.Age,
		Experience:       req.Experience,
		Skills:           req.Skills,
		FatigueLevel:     req.FatigueLevel,
		HoursPerDay:      req.HoursPerDay,
		HoursPerWeek:     req.HoursPerWeek,
		CurrentRole:      req.CurrentRole,
		PerformanceScore: req.PerformanceScore,
	})
	if err != nil {
		return workerError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Worker updated successfully", dto.FromWorker(updated))
}

func (h *WorkerHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeleteWorker(c.Context(), id); err != nil {
		return workerError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Worker deleted successfully", nil)
}

func workerError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return response.Error(c, fiber.StatusNotFound, "Worker not found", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}

// pathID parses the :id route parameter shared by the entity handlers.
func pathID(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
