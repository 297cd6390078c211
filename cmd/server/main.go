package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/uMbuso/TenantManagementApi/internal/config"     // Internal config loader
	"github.com/uMbuso/TenantManagementApi/internal/database"   // MySQL connection pool
	"github.com/uMbuso/TenantManagementApi/internal/handler"    // HTTP handlers
	"github.com/uMbuso/TenantManagementApi/internal/queue"      // Audit event consumer
	"github.com/uMbuso/TenantManagementApi/internal/repository" // Data access layer
	"github.com/uMbuso/TenantManagementApi/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // best-effort; real deployments set env vars directly

	cfg := config.Load() // Load environment config; exits on missing values

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: a nil client disables the response cache and the
	// auth rate limiter without affecting correctness.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tenants := repository.NewTenantRepo(db)
	leases := repository.NewLeaseRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	tenantHandler := handler.NewTenantHandler(tenants)
	leaseHandler := handler.NewLeaseHandler(leases, tenants)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, cfg, rdb, authHandler, tenantHandler, leaseHandler)

	// The audit consumer reconnects on its own; it never stops the server.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
