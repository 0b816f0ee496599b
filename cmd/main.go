package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/eventlane/eventlane-server/internal/api/http/httpctx"
	"github.com/eventlane/eventlane-server/internal/api/http/router"
	"github.com/eventlane/eventlane-server/internal/config"
	"github.com/eventlane/eventlane-server/internal/identity"
	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
	"github.com/eventlane/eventlane-server/internal/repository/postgres"
	"github.com/eventlane/eventlane-server/internal/server"
	"github.com/eventlane/eventlane-server/internal/service"
	"github.com/eventlane/eventlane-server/internal/weather"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	provider := identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.APIKey, cfg.Identity.Timeout)
	weatherProvider := weather.NewOpenWeather(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout)

	authService := service.NewAuth(userRepo, sessionRepo, provider, logger)
	eventService := service.NewEvent(eventRepo, logger)
	sessionService := service.NewSessions(sessionRepo, logger)
	ctxMgr := httpctx.NewManager()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	r := router.New(
		authService,
		eventService,
		sessionService,
		weatherProvider,
		provider,
		userRepo,
		sessionRepo,
		ctxMgr,
		registry,
		logger,
	)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
