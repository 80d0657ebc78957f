package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"promo-code-service/internal/handler/api"
	"promo-code-service/internal/handler/middleware"
	"promo-code-service/internal/infra/metrics"
	"promo-code-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, promoHandler *api.PromoCodeHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, promoHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	if m != nil {
		engine.Use(m.GinMiddleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, promoHandler *api.PromoCodeHandler, healthHandler *api.HealthHandler) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if m != nil {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}
	if cfg.Server.StaticDir != "" {
		engine.Static("/web", cfg.Server.StaticDir)
		engine.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/web/index.html")
		})
	}

	noStore := []gin.HandlerFunc{middleware.NoStore()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/health", Handler: healthHandler.Check, Mw: noStore},
			{Method: http.MethodPost, Path: "/generate", Handler: promoHandler.Generate},
			{Method: http.MethodGet, Path: "/validate/:code", Handler: promoHandler.ValidateByPath, Mw: noStore},
			{Method: http.MethodPost, Path: "/validate", Handler: promoHandler.ValidateByBody, Mw: noStore},
			{Method: http.MethodPost, Path: "/use/:code", Handler: promoHandler.Redeem},
			{Method: http.MethodGet, Path: "/promocodes", Handler: promoHandler.List, Mw: noStore},
			{Method: http.MethodGet, Path: "/stats", Handler: promoHandler.Stats, Mw: noStore},
		})
	}
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
