package routes

import (
	"workforce/internal/delivery/http/handler"
	"workforce/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	Health      *handler.HealthHandler
	Workers     *handler.WorkerHandler
	Roles       *handler.RoleHandler
	Predictions *handler.PredictionHandler
	Assignments *handler.AssignmentHandler
	Analytics   *handler.AnalyticsHandler
	Tasks       *handler.TaskHandler
	Sessions    *handler.SessionHandler
	HealthData  *handler.HealthMetricHandler
	Chatbot     *handler.ChatbotHandler
	TasksWS     *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	r.Workers.RegisterRoutes(app)
	r.Roles.RegisterRoutes(app)
	r.Predictions.RegisterRoutes(app)
	r.Assignments.RegisterRoutes(app)
	r.Analytics.RegisterRoutes(app)
	r.Tasks.RegisterRoutes(app)
	r.Sessions.RegisterRoutes(app)
	r.HealthData.RegisterRoutes(app)
	r.Chatbot.RegisterRoutes(app)

	if r.TasksWS != nil {
		app.Get("/ws/tasks", r.TasksWS.HandleTasksWS)
	}
}
