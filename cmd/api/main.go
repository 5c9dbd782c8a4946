package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	analysishandler "buffettbrain/pkg/api/analysis"
	"buffettbrain/pkg/api/health"
	"buffettbrain/pkg/api/middleware"
	reporthandler "buffettbrain/pkg/api/report"
	coreanalysis "buffettbrain/pkg/core/analysis"
	"buffettbrain/pkg/core/checklist"
	"buffettbrain/pkg/core/verdict"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// .env is optional; configuration may come from the environment.
		zap.S().Debug(".env not loaded")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	setupSentry()

	engine := coreanalysis.NewEngine(loadCriteria(), verdict.DefaultPolicy())

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))

	analyzeHandler := analysishandler.NewHandler(engine)
	htmlHandler := reporthandler.NewHandler(engine)

	api := router.Group("/api")
	{
		api.POST("/analyze", analyzeHandler.HandleAnalyze)
		api.POST("/analyze/report", htmlHandler.HandleReport)
		api.GET("/health", health.HandleHealth)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zap.L().Info("Starting server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	}
	sentry.Flush(2 * time.Second)
}

// loadCriteria reads the checklist criteria file named by CRITERIA_FILE,
// falling back to the built-in defaults when the file is absent or bad.
func loadCriteria() []checklist.Criterion {
	path := os.Getenv("CRITERIA_FILE")
	if path == "" {
		path = "config/criteria.yaml"
	}
	criteria, err := checklist.LoadCriteria(path)
	if err != nil {
		zap.L().Warn("Using default criteria", zap.String("path", path), zap.Error(err))
		return checklist.DefaultCriteria()
	}
	zap.L().Info("Loaded criteria", zap.String("path", path))
	return criteria
}

func setupSentry() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return
	}
	sampleRate := 1.0
	if v := os.Getenv("SENTRY_SAMPLE_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			sampleRate = parsed
		}
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      os.Getenv("ENVIRONMENT"),
		TracesSampleRate: sampleRate,
	})
	if err != nil {
		zap.L().Warn("Sentry init failed", zap.Error(err))
	}
}
