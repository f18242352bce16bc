package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laytime-calculator/internal/api"
	"laytime-calculator/internal/config"
	"laytime-calculator/internal/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const gracefulShutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		panic(err)
	}

	logger := log.InitLog(log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if wd, err := os.Getwd(); err == nil {
		zap.S().Infow("starting", "working_directory", wd, "vessel_dir", cfg.VesselDir, "env", cfg.Env)
	}

	srv, err := api.NewServer(api.Options{
		VesselDir:      cfg.VesselDir,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		ResultCacheTTL: cfg.ResultCacheTTL,
		Logger:         logger,
	})
	if err != nil {
		zap.S().Fatalw("failed to build server", "error", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		httpServer.SetKeepAlivesEnabled(false)
		_ = httpServer.Shutdown(ctxTimeout)
		zap.S().Info("api server terminated")
	}()

	zap.S().Infof("Starting API server on %s", httpServer.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Fatalw("failed to start server", "error", err)
	}
}
