package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rutacampus/ticketing-api/internal/api"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
	"github.com/rutacampus/ticketing-api/internal/core/service"
	mongodb "github.com/rutacampus/ticketing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/rutacampus/ticketing-api/internal/infrastructure/db/redis"
	"github.com/rutacampus/ticketing-api/internal/infrastructure/queue"
	"github.com/rutacampus/ticketing-api/internal/pkg/config"
	"github.com/rutacampus/ticketing-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	studentRepo := mongodb.NewStudentRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	if err := studentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("student index creation failed")
	}
	if err := adminRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("administrator index creation failed")
	}

	if err := service.EnsureSeedAdmin(ctx, adminRepo, ports.CreateAdminInput{
		Identificacion: cfg.Seed.Identificacion,
		Nombres:        cfg.Seed.Nombres,
		Apellidos:      cfg.Seed.Apellidos,
		Email:          cfg.Seed.Email,
		Password:       cfg.Seed.Password,
	}, log); err != nil {
		log.Fatal().Err(err).Msg("seed administrator failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, client, db, rdb, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("auth_policy", cfg.AuthPolicy).Msg("ticketing api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
