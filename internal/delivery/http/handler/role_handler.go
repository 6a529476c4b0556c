package handler

import (
	"errors"

	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoleHandler struct {
	uc usecase.RoleUsecase
}

func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/role")
	grp.Post("/add", h.Create)
	grp.Get("/all", h.List)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/description", h.Description)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *RoleHandler) Create(c fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateRole(c.Context(), usecase.CreateRoleInput{
		Name:            req.Name,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		DifficultyLevel: req.DifficultyLevel,
		TypicalTasks:    req.TypicalTasks,
		SuccessCriteria: req.SuccessCriteria,
	})
	if err != nil {
		return roleError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Role created successfully", dto.FromRole(created))
}

func (h *RoleHandler) List(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 100)
	offset := fiber.Query(c, "offset", 0)

	items, err := h.uc.ListRoles(c.Context(), limit, offset)
	if err != nil {
		return roleError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoles(items))
}

func (h *RoleHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	role, err := h.uc.GetRole(c.Context(), id)
	if err != nil {
		return roleError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRole(role))
}

func (h *RoleHandler) Description(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	desc, err := h.uc.GetRoleDescription(c.Context(), id)
	if err != nil {
		return roleError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoleDescription(desc))
}

func (h *RoleHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req dto.UpdateRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateRole(c.Context(), id, usecase.UpdateRoleInput{
		Name:            req.Name,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		DifficultyLevel: req.DifficultyLevel,
		TypicalTasks:    req.TypicalTasks,
		SuccessCriteria: req.SuccessCriteria,
	})
	if err != nil {
		return roleError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Role updated successfully", dto.FromRole(updated))
}

func (h *RoleHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeleteRole(c.Context(), id); err != nil {
		return roleError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Role deleted successfully", nil)
}

func roleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return response.Error(c, fiber.StatusNotFound, "Role not found", nil)
	case errors.Is(err, usecase.ErrRoleNameTaken):
		return response.Error(c, fiber.StatusConflict, "Role name already exists", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
