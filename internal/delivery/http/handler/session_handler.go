package handler

import (
	"errors"

	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.SessionUsecase
}

func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/session")
	grp.Post("/clock-in", h.ClockIn)
	grp.Put("/:id/clock-out", h.ClockOut)
	grp.Get("/all/hours", h.AllHours)
	grp.Get("/worker/:id", h.WorkerSessions)
	grp.Get("/worker/:id/active", h.ActiveSession)
	grp.Get("/worker/:id/hours", h.WorkerHours)
}

func (h *SessionHandler) ClockIn(c fiber.Ctx) error {
	var req dto.ClockInRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.ClockIn(c.Context(), req.WorkerID, req.Location)
	if err != nil {
		return sessionError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Clocked in successfully", dto.FromSession(created))
}

func (h *SessionHandler) ClockOut(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req dto.ClockOutRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.ClockOut(c.Context(), id, req.BreakHours)
	if err != nil {
		return sessionError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Clocked out successfully", dto.FromSession(updated))
}

func (h *SessionHandler) WorkerSessions(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	limit := fiber.Query(c, "limit", 30)

	items, err := h.uc.WorkerSessions(c.Context(), workerID, limit)
	if err != nil {
		return sessionError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSessions(items))
}

func (h *SessionHandler) ActiveSession(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	s, err := h.uc.ActiveSession(c.Context(), workerID)
	if err != nil {
		return sessionError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSession(s))
}

func (h *SessionHandler) WorkerHours(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	report, err := h.uc.WorkerHoursReport(c.Context(), workerID)
	if err != nil {
		return sessionError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func (h *SessionHandler) AllHours(c fiber.Ctx) error {
	reports, err := h.uc.AllWorkersHoursReport(c.Context())
	if err != nil {
		return sessionError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, reports)
}

func sessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return response.Error(c, fiber.StatusNotFound, "Worker not found", nil)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return response.Error(c, fiber.StatusNotFound, "Work session not found", nil)
	case errors.Is(err, usecase.ErrNoActiveSession):
		return response.Error(c, fiber.StatusNotFound, "No active work session", nil)
	case errors.Is(err, usecase.ErrAlreadyClockedIn):
		return response.Error(c, fiber.StatusConflict, "Worker already clocked in", nil)
	case errors.Is(err, usecase.ErrSessionClosed):
		return response.Error(c, fiber.StatusConflict, "Work session already closed", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
