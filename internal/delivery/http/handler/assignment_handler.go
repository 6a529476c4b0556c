package handler

import (
	"errors"

	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/assignment")
	grp.Post("/create", h.Create)
	grp.Put("/:id/feedback", h.Feedback)
	grp.Get("/all", h.List)
}

func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateAssignment(c.Context(), usecase.CreateAssignmentInput{
		WorkerID: req.WorkerID,
		RoleID:   req.RoleID,
		FitScore: req.FitScore,
	})
	if err != nil {
		return assignmentError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Assignment created successfully", dto.FromAssignment(created))
}

func (h *AssignmentHandler) Feedback(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req dto.AssignmentFeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if req.Success == nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.RecordFeedback(c.Context(), id, *req.Success, req.Feedback)
	if err != nil {
		return assignmentError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Feedback recorded successfully", dto.FromAssignment(updated))
}

func (h *AssignmentHandler) List(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 100)
	offset := fiber.Query(c, "offset", 0)

	items, err := h.uc.ListAssignments(c.Context(), limit, offset)
	if err != nil {
		return assignmentError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAssignments(items))
}

func assignmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return response.Error(c, fiber.StatusNotFound, "Worker not found", nil)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return response.Error(c, fiber.StatusNotFound, "Role not found", nil)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return response.Error(c, fiber.StatusNotFound, "Assignment not found", nil)
	case errors.Is(err, usecase.ErrFeedbackRecorded):
		return response.Error(c, fiber.StatusConflict, "Feedback already recorded", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
