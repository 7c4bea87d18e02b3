// @title        CareLink Portal API
// @version      1.0
// @description  Role-based healthcare portal: session management, profiles, and appointments.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/carelink/portal-api/internal/api"
	"github.com/carelink/portal-api/internal/api/metrics"
	"github.com/carelink/portal-api/internal/core/ports"
	"github.com/carelink/portal-api/internal/core/service"
	"github.com/carelink/portal-api/internal/infrastructure/config"
	mongodb "github.com/carelink/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/carelink/portal-api/internal/infrastructure/db/redis"
	"github.com/carelink/portal-api/internal/infrastructure/directory"
	"github.com/carelink/portal-api/internal/infrastructure/queue"
	"github.com/carelink/portal-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("load configuration: %v", err))
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// Audit trail: entries flow through the sharded dispatcher into Mongo.
	dispatcher := queue.NewDispatcher(0, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	var source ports.CredentialSource
	switch cfg.Directory.Backend {
	case "mongo":
		source = mongodb.NewAccountDirectory(db)
	default:
		source = directory.NewHTTPSource(cfg.Directory.URL, cfg.Directory.Timeout)
	}

	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.Key, cfg.Session.TTL)
	sessions := service.NewSessionManager(source, sessionStore, service.PlaintextVerifier{}, dispatcher, log)

	if err := sessions.Restore(ctx); err != nil {
		metrics.SessionRestoresTotal.WithLabelValues("error").Inc()
		log.Warn().Err(err).Msg("session restore failed")
	} else if _, ok := sessions.Current(); ok {
		metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	} else {
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
	}

	appointments := service.NewAppointmentService(mongodb.NewAppointmentRepository(db), log)

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		Appointments: appointments,
		Directory:    source,
		Mongo:        db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
