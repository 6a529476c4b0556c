package handler

import (
	"errors"

	"workforce/internal/delivery/http/dto"
	"workforce/internal/pkg/response"
	"workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TaskHandler struct {
	uc usecase.TaskUsecase
}

func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func (h *TaskHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/task")
	grp.Post("/create", h.Create)
	grp.Get("/all", h.List)
	grp.Get("/worker/:id", h.ListByWorker)
	grp.Get("/worker/:id/notifications", h.Notifications)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *TaskHandler) Create(c fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateTask(c.Context(), usecase.CreateTaskInput{
		WorkerID:    req.WorkerID,
		RoleID:      req.RoleID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		AssignedBy:  req.AssignedBy,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return taskError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Task created successfully", dto.FromTask(created))
}

func (h *TaskHandler) List(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 100)
	offset := fiber.Query(c, "offset", 0)

	items, err := h.uc.ListTasks(c.Context(), limit, offset)
	if err != nil {
		return taskError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTasks(items))
}

func (h *TaskHandler) ListByWorker(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	status := fiber.Query(c, "status", "")

	items, err := h.uc.ListWorkerTasks(c.Context(), workerID, status)
	if err != nil {
		return taskError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTasks(items))
}

func (h *TaskHandler) Notifications(c fiber.Ctx) error {
	workerID, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	items, err := h.uc.WorkerNotifications(c.Context(), workerID)
	if err != nil {
		return taskError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTaskNotifications(items))
}

func (h *TaskHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	t, err := h.uc.GetTask(c.Context(), id)
	if err != nil {
		return taskError(c, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTask(t))
}

func (h *TaskHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateTask(c.Context(), id, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return taskError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Task updated successfully", dto.FromTask(updated))
}

func (h *TaskHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeleteTask(c.Context(), id); err != nil {
		return taskError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Task deleted successfully", nil)
}

func taskError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return response.Error(c, fiber.StatusNotFound, "Worker not found", nil)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return response.Error(c, fiber.StatusNotFound, "Role not found", nil)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return response.Error(c, fiber.StatusNotFound, "Task not found", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
