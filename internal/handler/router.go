package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"membership-backoffice/internal/domain/employee"
	"membership-backoffice/internal/handler/api"
	"membership-backoffice/internal/handler/middleware"
	"membership-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	couponHandler *api.CouponHandler,
	orphanHandler *api.OrphanHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, couponHandler, orphanHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	couponHandler *api.CouponHandler,
	orphanHandler *api.OrphanHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operatorOnly := authMiddleware.RequireRoleAtLeast(employee.RoleOperator)
	adminOnly := authMiddleware.RequireRoleAtLeast(employee.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodPost, Path: "/validate", Handler: couponHandler.Validate},
				{Method: http.MethodPost, Path: "/redeem", Handler: couponHandler.Redeem, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodGet, Path: "/:code", Handler: couponHandler.Get},
				{Method: http.MethodGet, Path: "/:code/uses", Handler: couponHandler.ListUses},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: couponHandler.UpdateStatus, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		orphans := apiGroup.Group("/orphans")
		orphans.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orphans, []route{
				{Method: http.MethodGet, Path: "", Handler: orphanHandler.List},
				{Method: http.MethodGet, Path: "/stats", Handler: orphanHandler.Stats},
				{Method: http.MethodPost, Path: "/:id/resolve", Handler: orphanHandler.Resolve, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/retry", Handler: orphanHandler.Retry, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}
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
