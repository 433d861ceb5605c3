// Package router registers the HTTP routes of the service.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/theatre-data-processor/internal/config"
	"github.com/iliyamo/theatre-data-processor/internal/handler"
	"github.com/iliyamo/theatre-data-processor/internal/middleware"
)

// maxImportBody caps an import document.
const maxImportBody = "8M"

// RegisterRoutes registers routes that need no authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterImport mounts POST /v1/import/:kind behind JWT auth, the
// OPERATOR role and the Redis token bucket.  A nil rdb disables the
// limiter.
func RegisterImport(e *echo.Echo, h *handler.ImportHandler, jwtSecret string, rl config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/import")
	g.Use(echomw.BodyLimit(maxImportBody))
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(middleware.RoleOperator))
	g.Use(middleware.NewTokenBucket(rl, rdb))
	g.POST("/:kind", h.Import)
}

// RegisterExport mounts the read-only export documents.
func RegisterExport(e *echo.Echo, h *handler.ExportHandler) {
	g := e.Group("/v1/export")
	g.GET("/theatres", h.Theatres)
	g.GET("/plays", h.Plays)
}
