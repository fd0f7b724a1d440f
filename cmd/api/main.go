package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-todo-backend/config"
	_ "smart-todo-backend/docs" // Swagger docs
	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/chatbot"
	"smart-todo-backend/internal/httpserver"
	"smart-todo-backend/internal/scheduler"
	taskHTTP "smart-todo-backend/internal/task/delivery/http"
	"smart-todo-backend/internal/task/repository/memory"
	"smart-todo-backend/internal/task/usecase"
	"smart-todo-backend/pkg/log"
)

// @title       Smart Todo API
// @description Personal task management backend: Vietnamese/English chatbot task parsing, on-time prediction, priority scoring, daily and weekly scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone: parser and scheduler work in local wall-clock time.
	loc, err := time.LoadLocation(cfg.Timezone.Name)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone.Name, err)
		loc = time.UTC
	}
	time.Local = loc

	// 4. AI: lazy-loaded classifier with heuristic fallback.
	holder := ai.NewHolder(logger, cfg.AI.ModelPath)
	predictor := ai.NewService(logger, holder)

	// 5. Core services
	parser := chatbot.NewParser()
	sched := scheduler.New(scheduler.NewScorer(predictor))

	// 6. Task domain
	taskRepo := memory.New()
	taskUC := usecase.New(logger, taskRepo, parser, predictor, sched)

	// 7. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TaskUseCase:     taskUC,
		ScheduleDefaults: taskHTTP.ScheduleDefaults{
			AvailableHours: cfg.Scheduler.AvailableHours,
			StartHour:      cfg.Scheduler.StartHour,
			HoursPerDay:    cfg.Scheduler.HoursPerDay,
		},
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create http server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "http server stopped: %v", err)
	}

	logger.Info(ctx, "Shutdown complete")
}
