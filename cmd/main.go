// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"cert_keep/internal/config"
	"cert_keep/internal/handlers"
	"cert_keep/internal/middleware"
	"cert_keep/internal/mq"
	"cert_keep/internal/repository"
	"cert_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 通知イベントの発行口。MQ無効時はNop実装
	var publisher mq.Publisher
	if config.Cfg.MQ.Enabled {
		amqpPublisher, err := mq.NewAmqpPublisher(config.Cfg.MQ.URL)
		if err != nil {
			slog.Error("Error connecting to MQ", slog.Any("error", err))
			os.Exit(1)
		}
		publisher = amqpPublisher
		slog.Info("MQ publisher initialized")
	} else {
		publisher = mq.NewNopPublisher()
		slog.Info("MQ disabled, using no-op publisher")
	}
	defer publisher.Close()

	// Dependency Injection
	templateRepo := repository.NewGormTemplateRepository()
	projectRepo := repository.NewGormProjectRepository()
	checklistRepo := repository.NewGormChecklistRepository()
	reviewRepo := repository.NewGormReviewRepository()
	adjustmentRepo := repository.NewGormAdjustmentRepository()

	templateService := service.NewTemplateService(db, templateRepo)
	projectService := service.NewProjectService(db, projectRepo, checklistRepo, templateRepo, reviewRepo, &config.Cfg)
	checklistService := service.NewChecklistService(db, projectRepo, checklistRepo, templateRepo)
	reviewService := service.NewReviewService(db, projectRepo, reviewRepo, publisher)
	adjustmentService := service.NewAdjustmentService(db, projectRepo, reviewRepo, adjustmentRepo)

	templateHandler := handlers.NewTemplateHandler(templateService, logger)
	projectHandler := handlers.NewProjectHandler(projectService, checklistService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	adjustmentHandler := handlers.NewAdjustmentHandler(adjustmentService, logger)

	// 期限スキャナ（イベント発行のみ）
	scannerCtx, stopScanner := context.WithCancel(context.Background())
	defer stopScanner()
	if config.Cfg.App.ScanIntervalMin > 0 {
		scanner := service.NewDeadlineScanner(db, reviewRepo, publisher, &config.Cfg, logger)
		go scanner.Run(scannerCtx, time.Duration(config.Cfg.App.ScanIntervalMin)*time.Minute)
		slog.Info("Deadline scanner started", slog.Int("interval_min", config.Cfg.App.ScanIntervalMin))
	}

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.ActorMiddleware)

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Template routes（テンプレートストア）
		r.Route("/templates", func(r chi.Router) {
			r.Post("/", templateHandler.PostTemplate)
			r.Get("/", templateHandler.GetTemplates)
			r.Get("/{template_id}", templateHandler.GetTemplate)
			r.Put("/{template_id}", templateHandler.PutTemplate)
			r.Delete("/{template_id}", templateHandler.DeleteTemplate)
		})

		// Project routes
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", projectHandler.PostProject)
			r.Get("/{project_id}", projectHandler.GetProject)
			r.Patch("/{project_id}", projectHandler.PatchProject)

			r.Get("/{project_id}/requirements", projectHandler.GetRequirements)
			r.Patch("/{project_id}/requirements/{status_id}", projectHandler.PatchRequirement)
			r.Put("/{project_id}/template", projectHandler.PutTemplateAssignment)
			r.Patch("/{project_id}/progress-mode", projectHandler.PatchProgressMode)

			// Review routes。提出は操作者情報が必須
			r.Get("/{project_id}/reviews", reviewHandler.GetReviews)
			r.Get("/{project_id}/steps", reviewHandler.GetSteps)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireActor)
				r.Post("/{project_id}/reviews", reviewHandler.PostReview)
				r.Patch("/{project_id}/reviews/{review_id}/issues/{issue_id}", reviewHandler.PatchIssueStatus)
			})
		})

		// Adjustment routes
		r.Route("/adjustments", func(r chi.Router) {
			r.Get("/{project_id}", adjustmentHandler.GetAdjustments)
			r.Patch("/{project_id}", adjustmentHandler.PatchAdjustments)
		})
	})

	// Metrics
	r.Handle("/metrics", promhttp.Handler())

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")
	stopScanner()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
