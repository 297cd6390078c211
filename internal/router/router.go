package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/uMbuso/TenantManagementApi/internal/config"     // configuration for JWT and middleware settings
	"github.com/uMbuso/TenantManagementApi/internal/handler"    // import the handlers that implement business logic
	"github.com/uMbuso/TenantManagementApi/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/uMbuso/TenantManagementApi/internal/model"      // role constants for the policy table
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// This endpoint can be used by load balancers or monitoring systems to
	// verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires every /api route with its middleware.  The policy is:
//
//	login/register          – unauthenticated (rate limited)
//	read (list/get)         – any authenticated user
//	create/update           – Admin or Manager
//	delete                  – Admin only
//
// rdb may be nil, in which case the cache and rate limiter become
// pass-throughs.
func RegisterAPI(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	a *handler.AuthHandler, t *handler.TenantHandler, l *handler.LeaseHandler) {

	// Unauthenticated auth operations live under /api/auth behind the
	// token-bucket limiter to slow down credential stuffing.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	authGroup := e.Group("/api/auth", limiter)
	authGroup.POST("/login", a.Login)
	authGroup.POST("/register", a.Register)

	// Everything else requires a valid access token.  JWTAuth validates
	// signature, issuer, audience and expiry, then stores the identity
	// claims in the context for RequireRole and the handlers.
	api := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience))
	api.GET("/auth/me", a.Me)

	// Read endpoints are open to every authenticated role.  The two list
	// endpoints additionally get a short-TTL Redis response cache.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	api.GET("/tenants", t.List, cache)
	api.GET("/tenants/:id", t.Get)
	api.GET("/tenants/:tenantId/leases", l.ListByTenant, cache)
	api.GET("/leases/:id", l.Get)

	// Mutations require Admin or Manager.
	write := middleware.RequireRole(model.RoleAdmin, model.RoleManager)
	api.POST("/tenants", t.Create, write)
	api.PUT("/tenants/:id", t.Update, write)
	api.POST("/tenants/:tenantId/leases", l.Create, write)
	api.PUT("/leases/:id", l.Update, write)

	// Deletes are Admin only.
	admin := middleware.RequireRole(model.RoleAdmin)
	api.DELETE("/tenants/:id", t.Delete, admin)
	api.DELETE("/leases/:id", l.Delete, admin)
}
