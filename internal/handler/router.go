package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookcase-rental/internal/domain/principal"
	"bookcase-rental/internal/handler/api"
	"bookcase-rental/internal/handler/middleware"
	"bookcase-rental/internal/infra/metrics"
	"bookcase-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Occupancy      *api.OccupancyHandler
	Deposit        *api.DepositHandler
	Reconciliation *api.ReconciliationHandler
}

func NewHandlers(o *api.OccupancyHandler, d *api.DepositHandler, r *api.ReconciliationHandler) Handlers {
	return Handlers{Occupancy: o, Deposit: d, Reconciliation: r}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	registry *metrics.Registry,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, registry)
	setupRoutes(engine, cfg, registry, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, registry *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(registry))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, registry *metrics.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(registry.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		occupancies := apiGroup.Group("/occupancies")
		addRoutes(occupancies, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Occupancy.Occupy},
			{Method: http.MethodPost, Path: "/release", Handler: h.Occupancy.Release},
			{Method: http.MethodGet, Path: "/:id/obligations", Handler: h.Occupancy.ListObligations},
		})

		bookCases := apiGroup.Group("/book-cases")
		addRoutes(bookCases, []route{
			{Method: http.MethodGet, Path: "/:id/occupancy", Handler: h.Occupancy.GetBookCaseOccupancy},
		})

		owners := apiGroup.Group("/owners")
		addRoutes(owners, []route{
			{Method: http.MethodGet, Path: "/:id/deposit", Handler: h.Deposit.GetByOwner},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{
				Method:  http.MethodPost,
				Path:    "/reconciliations",
				Handler: h.Reconciliation.Run,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(principal.RoleAdmin)},
			},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
