package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/faculty-portal/api/swagger"
	"github.com/noah-isme/faculty-portal/internal/handler"
	internalmiddleware "github.com/noah-isme/faculty-portal/internal/middleware"
	"github.com/noah-isme/faculty-portal/internal/service"
	"github.com/noah-isme/faculty-portal/pkg/apiclient"
	"github.com/noah-isme/faculty-portal/pkg/config"
	"github.com/noah-isme/faculty-portal/pkg/jobs"
	"github.com/noah-isme/faculty-portal/pkg/logger"
	corsmiddleware "github.com/noah-isme/faculty-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/faculty-portal/pkg/middleware/requestid"
)

// @title Faculty Portal API
// @version 1.0.0
// @description Session-scoped department and teacher views over the faculty records API
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	clientOpts := []apiclient.Option{
		apiclient.WithTimeout(cfg.Upstream.Timeout),
		apiclient.WithLogger(logr.Named("upstream")),
	}
	if metricsSvc != nil {
		clientOpts = append(clientOpts, apiclient.WithObserver(metricsSvc))
	}
	client := apiclient.New(cfg.Upstream.BaseURL, clientOpts...)

	queueCfg := jobs.QueueConfig{
		Workers:    cfg.Relations.Workers,
		BufferSize: cfg.Relations.BufferSize,
		Logger:     logr.Named("roster"),
	}
	if metricsSvc != nil {
		queueCfg.Observer = metricsSvc
	}
	rosterQueue := jobs.NewQueue("roster", queueCfg)
	rosterQueue.Start(ctx)

	validate := validator.New()
	factory := func(id string) *service.Workspace {
		return service.NewWorkspace(id, service.WorkspaceDeps{
			Departments: client.Departments(),
			Professors:  client.Professors(),
			Dispatcher:  rosterQueue,
			Validator:   validate,
			Logger:      logr,
		})
	}
	var gauge interface{ SetActiveSessions(int) }
	if metricsSvc != nil {
		gauge = metricsSvc
	}
	sessions := service.NewSessionService(factory, service.SessionConfig{IdleTTL: cfg.Sessions.IdleTTL}, gauge, logr)
	go sessions.Run(ctx, cfg.Sessions.SweepInterval)

	exports := service.NewExportService(cfg.Exports.Enabled, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(internalmiddleware.Metrics(metricsSvc))
	}

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	sessionHandler := handler.NewSessionHandler(sessions)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", sessionHandler.Ready)
	if metricsSvc != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r.Group(cfg.APIPrefix), sessions, exports)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("server shutdown", zap.Error(err))
	}
	sessions.CloseAll()
	rosterQueue.Stop()
}
