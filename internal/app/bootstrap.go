package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"workforce/internal/config"
	"workforce/internal/delivery/http/middleware"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: container.Config.App.Name,
	})

	registerGlobalMiddleware(f, container.Logger)
	container.Routes.Register(f)

	return &App{Fiber: f, Container: container}
}

// Bootstrap builds the container, starts the websocket hub and returns the
// app with a cleanup closure for shutdown.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()

	a := New(container)
	return a, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewActorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
