package handler

import (
	"errors"

	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatbotHandler struct {
	uc usecase.ChatbotUsecase
}

type chatMessageRequest struct {
	Message string `json:"message"`
}

func NewChatbotHandler(uc usecase.ChatbotUsecase) *ChatbotHandler {
	return &ChatbotHandler{uc: uc}
}

func (h *ChatbotHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/chatbot")
	grp.Post("/message", h.Message)
	grp.Get("/status", h.Status)
}

func (h *ChatbotHandler) Message(c fiber.Ctx) error {
	var req chatMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	reply, err := h.uc.Reply(c.Context(), req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, reply)
}

func (h *ChatbotHandler) Status(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Status())
}
