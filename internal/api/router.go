package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rutacampus/ticketing-api/internal/api/handler"
	"github.com/rutacampus/ticketing-api/internal/api/middleware"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
	"github.com/rutacampus/ticketing-api/internal/core/service"
	mongodb "github.com/rutacampus/ticketing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/rutacampus/ticketing-api/internal/infrastructure/db/redis"
	"github.com/rutacampus/ticketing-api/internal/infrastructure/http/handlers"
	"github.com/rutacampus/ticketing-api/internal/pkg/config"
	"github.com/rutacampus/ticketing-api/internal/pkg/qr"
)

// NewRouter builds the Echo instance with all routes registered. The audit
// sink is created and started by the caller so its workers share the
// process lifecycle.
func NewRouter(cfg *config.Config, client *mongo.Client, db *mongo.Database, rdb *goredis.Client, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ticketing"))

	// --- Dependencies ---
	studentRepo := mongodb.NewStudentRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	ledgerRepo := mongodb.NewLedgerRepository(client, db)
	dedup := redisdb.NewRedemptionDeduper(rdb, time.Duration(cfg.RedeemWindowSec)*time.Second)

	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	studentService := service.NewStudentService(studentRepo, qr.NewGenerator(), audit, log)
	adminService := service.NewAdminService(adminRepo, audit, log)
	ledgerService := service.NewLedgerService(ledgerRepo, studentRepo, dedup, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	adminHandler := handler.NewAdminHandler(adminService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)

	authMW := middleware.Auth(cfg.JWTSecret, adminRepo)

	// Read endpoints lose the gate under the open policy; mutations always
	// require an actor because trips record the authorizing administrator.
	var readMW []echo.MiddlewareFunc
	if cfg.AuthPolicy == config.AuthPolicyRequired {
		readMW = append(readMW, authMW)
	}

	v1 := e.Group("/api/v1")
	v1.POST("/token", authHandler.Token)

	v1.POST("/estudiantes", studentHandler.Create, authMW)
	v1.GET("/estudiantes/:identificacion", studentHandler.Get, readMW...)
	v1.GET("/estudiantes", studentHandler.List, readMW...)
	v1.DELETE("/estudiantes", studentHandler.Delete, authMW)

	v1.PUT("/estudiantes/tickets/:identificacion", ledgerHandler.SetTickets, authMW)
	v1.PUT("/estudiantes/tickets/delete/:identificacion", ledgerHandler.Discount, authMW)
	v1.GET("/viajes/:identificacion", ledgerHandler.ListTrips, readMW...)

	v1.POST("/administrador", adminHandler.Create, authMW)
	v1.PUT("/administrador", adminHandler.Edit, authMW)
	v1.DELETE("/administrador", adminHandler.Delete, authMW)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
