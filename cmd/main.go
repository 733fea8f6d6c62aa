package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/creatorly/upload-scheduling/internal/config"
	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/handler"
	"github.com/creatorly/upload-scheduling/internal/health"
	"github.com/creatorly/upload-scheduling/internal/infra/archive"
	"github.com/creatorly/upload-scheduling/internal/infra/library"
	"github.com/creatorly/upload-scheduling/internal/infra/pipeline"
	"github.com/creatorly/upload-scheduling/internal/infra/repository"
	"github.com/creatorly/upload-scheduling/internal/infra/resultrecorder"
	"github.com/creatorly/upload-scheduling/internal/observability"
	"github.com/creatorly/upload-scheduling/internal/observability/logging"
	"github.com/creatorly/upload-scheduling/internal/observability/metrics"
	"github.com/creatorly/upload-scheduling/internal/observability/middleware"
	"github.com/creatorly/upload-scheduling/internal/service/allocate"
	"github.com/creatorly/upload-scheduling/internal/service/classify"
	"github.com/creatorly/upload-scheduling/internal/service/schedule"
	"github.com/creatorly/upload-scheduling/internal/service/slotseq"
	"github.com/creatorly/upload-scheduling/internal/service/snapshot"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		slog.Error("failed to initialize schedule metrics", slog.String("error", err.Error()))
		return 1
	}

	resultRecorderCfg := resultrecorder.LoadConfig()
	resultRecorder, err := resultrecorder.NewRecorder(ctx, resultRecorderCfg)
	if err != nil {
		slog.Error("failed to initialize allocation result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close allocation result recorder", slog.String("error", err.Error()))
		}
	}()

	publicationSource, err := initPublicationSource(cfg)
	if err != nil {
		slog.Error("failed to initialize publication source", slog.String("error", err.Error()))
		return 1
	}

	var notifier pipeline.Notifier
	if cfg.PipelineURL != "" {
		notifier = pipeline.NewClient(cfg.PipelineURL)
		slog.Info("pipeline notifier configured", slog.String("url", cfg.PipelineURL))
	} else {
		slog.Warn("PIPELINE_URL not set, scheduled items will not reach the processing pipeline")
	}

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	scheduleRepo := repository.NewScheduleRepository(redisClient)

	classifier := classify.NewClassifier()
	slotSeq := slotseq.NewGenerator()

	snapshotLoader := snapshot.NewLoader(
		publicationSource,
		scheduleRepo,
		classifier,
		cfg.Snapshot.LookbackDays,
		cfg.Snapshot.LookaheadDays,
	)
	allocateService := allocate.NewService(slotSeq, scheduleMetrics)
	scheduleService := schedule.NewService(scheduleRepo, notifier, scheduleMetrics)

	scheduleHandler := handler.NewScheduleHandler(
		snapshotLoader,
		allocateService,
		scheduleService,
		classifier,
		cfg,
		scheduleMetrics,
		resultRecorder,
	)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("upload-scheduling"),
		TracerName:  "github.com/creatorly/upload-scheduling/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	planHandler := handler.NewPlanHandler(scheduleRepo)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/schedule", scheduleHandler.HandleSchedule)
		v1.POST("/schedule/preview", scheduleHandler.HandlePreview)
		v1.GET("/schedule/plans/:day", planHandler.HandleGetDayPlan)
		v1.DELETE("/schedule/plans/:day", planHandler.HandleDeleteDayPlan)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("default_interval", cfg.Schedule.Interval.String()),
			slog.String("default_conflict_mode", cfg.Schedule.ConflictMode.String()),
			slog.Int("search_horizon_days", cfg.Schedule.HorizonDays),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

// initPublicationSource picks the snapshot seed in order of preference:
// library HTTP API, archive database, none.
func initPublicationSource(cfg *config.Config) (domain.PublicationSource, error) {
	if cfg.LibraryAPIURL != "" {
		slog.Info("using content library API as publication source",
			slog.String("url", cfg.LibraryAPIURL),
		)
		return library.NewClient(cfg.LibraryAPIURL), nil
	}

	if cfg.ArchiveDBDSN != "" {
		store, err := archive.Open(cfg.ArchiveDBDSN)
		if err != nil {
			return nil, err
		}
		slog.Info("using archive database as publication source")
		return store, nil
	}

	slog.Warn("no publication source configured, runs start from committed plans only")
	return nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "upload-scheduling"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("upload-scheduling"),
	})
}
