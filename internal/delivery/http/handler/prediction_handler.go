package handler

import (
	"errors"

	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PredictionHandler struct {
	uc usecase.PredictionUsecase
}

func NewPredictionHandler(uc usecase.PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

func (h *PredictionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/predict-fit", h.PredictFit)
}

func (h *PredictionHandler) PredictFit(c fiber.Ctx) error {
	var req dto.PredictFitRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	result, err := h.uc.PredictFit(c.Context(), req.RoleID, req.TopN)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		case errors.Is(err, usecase.ErrRoleNotFound):
			return response.Error(c, fiber.StatusNotFound, "Role not found", nil)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPrediction(result))
}
