package router

import (
	"github.com/gin-gonic/gin"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// RouteRegistrar registers a handler's routes on the tenant-scoped API group
type RouteRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// Router assembles the gin engine: global middleware, health probes and the
// tenant-scoped /api/v1 group.
type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

// New creates a router with the standard middleware chain
func New(logger *zap.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
	)

	api := engine.Group("/api/v1")
	api.Use(middleware.RequireTenant())

	return &Router{engine: engine, api: api}
}

// Register mounts each registrar's routes under /api/v1
func (r *Router) Register(registrars ...RouteRegistrar) {
	for _, registrar := range registrars {
		registrar.RegisterRoutes(r.api)
	}
}

// Engine exposes the underlying gin engine, for mounting unscoped routes and
// for the HTTP server
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
