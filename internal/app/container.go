package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"workforce/internal/config"
	"workforce/internal/database"
	"workforce/internal/database/migration"
	dbpostgres "workforce/internal/database/postgres"
	"workforce/internal/delivery/http/handler"
	"workforce/internal/delivery/http/routes"
	"workforce/internal/domain/scoring"
	"workforce/internal/infrastructure/cache"
	"workforce/internal/repository"
	"workforce/internal/usecase"
	"workforce/internal/ws"
)

// Container wires the whole dependency graph: database, cache, websocket hub,
// scoring engine, usecases and handlers.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Routes *routes.Registry
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	engine := scoring.NewEngine(scoring.Weights{
		Skill:       cfg.Scoring.SkillWeight,
		Performance: cfg.Scoring.PerformanceWeight,
		Fatigue:     cfg.Scoring.FatigueWeight,
		Difficulty:  cfg.Scoring.DifficultyWeight,
	})

	workerRepo := repository.NewPostgresWorkerRepository(db)
	roleRepo := repository.NewPostgresRoleRepository(db)
	assignmentRepo := repository.NewPostgresAssignmentRepository(db)
	taskRepo := repository.NewPostgresTaskRepository(db)
	sessionRepo := repository.NewPostgresSessionRepository(db)
	healthRepo := repository.NewPostgresHealthRepository(db)

	workerUC := usecase.NewWorkerUsecase(workerRepo, redisCache)
	roleUC := usecase.NewRoleUsecase(roleRepo, redisCache)
	predictionUC := usecase.NewPredictionUsecase(roleRepo, workerRepo, engine)
	analyticsUC := usecase.NewAnalyticsUsecase(workerRepo, roleRepo, assignmentRepo, redisCache)
	assignmentUC := usecase.NewAssignmentUsecase(assignmentRepo, workerRepo, roleRepo, redisCache)
	taskUC := usecase.NewTaskUsecase(taskRepo, workerRepo, roleRepo, ws.NewTaskBroadcaster(hub))
	sessionUC := usecase.NewSessionUsecase(sessionRepo, workerRepo, redisCache)
	healthUC := usecase.NewHealthUsecase(healthRepo, workerRepo)
	chatbotUC := usecase.NewChatbotUsecase(workerRepo, roleRepo)

	registry := &routes.Registry{
		Health:      handler.NewHealthHandler(db, redisCache),
		Workers:     handler.NewWorkerHandler(workerUC),
		Roles:       handler.NewRoleHandler(roleUC),
		Predictions: handler.NewPredictionHandler(predictionUC),
		Assignments: handler.NewAssignmentHandler(assignmentUC),
		Analytics:   handler.NewAnalyticsHandler(analyticsUC),
		Tasks:       handler.NewTaskHandler(taskUC),
		Sessions:    handler.NewSessionHandler(sessionUC),
		HealthData:  handler.NewHealthMetricHandler(healthUC),
		Chatbot:     handler.NewChatbotHandler(chatbotUC),
		TasksWS:     ws.NewHandler(hub, logger),
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
