package handler

import (
	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analytics")
	grp.Get("/overview", h.Overview)
	grp.Get("/skill-gap", h.SkillGap)
}

func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	report, err := h.uc.Overview(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func (h *AnalyticsHandler) SkillGap(c fiber.Ctx) error {
	report, err := h.uc.SkillGap(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkillGap(report))
}
