package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"adslot-ledger/internal/handler/api"
	"adslot-ledger/internal/handler/middleware"
	"adslot-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers so the router signature stays stable as
// resources are added.
type Handlers struct {
	Units  *api.UnitHandler
	Spaces *api.SpaceHandler
	Slots  *api.SlotHandler
	Ledger *api.LedgerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

// Reads are public. Every call that acts as an account needs a Bearer token.
func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/units"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Units.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Units.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Units.Create, Mw: auth},
		})

		addRoutes(apiGroup.Group("/spaces"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Spaces.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Spaces.Get},
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Spaces.ListSlots},
			{Method: http.MethodPost, Path: "", Handler: h.Spaces.Create, Mw: auth},
		})

		addRoutes(apiGroup.Group("/slots"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Slots.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Slots.Get},
			{Method: http.MethodGet, Path: "/:id/payout", Handler: h.Slots.Payout},
			{Method: http.MethodPost, Path: "", Handler: h.Slots.Take, Mw: auth},
			{Method: http.MethodPost, Path: "/:id/transfer", Handler: h.Slots.Transfer, Mw: auth},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/escrow", Handler: h.Ledger.Escrow},
			{Method: http.MethodGet, Path: "/accounts/:id/balance", Handler: h.Ledger.Balance},
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
