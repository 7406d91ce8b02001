package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/application/services"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/metrics"
	"github.com/arashoo/Katena-project-management/pkg/interfaces/http/handler"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a RouteRegistrar to be registered by Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes under /api/<version>
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// Options selects the optional parts of the engine
type Options struct {
	Logger      *zap.Logger
	Recorder    *metrics.Recorder
	MetricsPath string
}

// NewEngine builds the gin engine serving the shop API
func NewEngine(shop *services.Shop, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := gin.New()
	engine.Use(RequestID(), Logging(logger), Recovery(logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, handler.NewSuccessResponse(gin.H{"status": "ok"}))
	})
	if opts.Recorder != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(opts.Recorder.Handler()))
	}

	NewRouter(engine).
		Register(handler.NewProjectHandler(shop)).
		Register(handler.NewOrderHandler(shop)).
		Register(handler.NewInventoryHandler(shop)).
		Register(handler.NewHistoryHandler(shop)).
		Register(handler.NewAllocationHandler(shop)).
		Setup()
	return engine
}
