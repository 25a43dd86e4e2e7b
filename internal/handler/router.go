package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"glamping-api/internal/domain/user"
	"glamping-api/internal/handler/api"
	"glamping-api/internal/handler/middleware"
	"glamping-api/internal/handler/validation"
	"glamping-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Catalog      *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	validation.RegisterTagNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	{
		addRoutes(v1, []route{
			{Method: http.MethodGet, Path: "/locations", Handler: h.Catalog.ListLocations},
			{Method: http.MethodGet, Path: "/locations/:id", Handler: h.Catalog.GetLocation},
			{Method: http.MethodGet, Path: "/packages", Handler: h.Catalog.ListPackages},
			{Method: http.MethodGet, Path: "/packages/featured", Handler: h.Catalog.FeaturedPackages},
			{Method: http.MethodGet, Path: "/packages/:id", Handler: h.Catalog.GetPackageBySlug},
			{Method: http.MethodGet, Path: "/packages/:id/availability", Handler: h.Availability.GetAvailability},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.CreateReservation},
			{Method: http.MethodPost, Path: "/reservations/check", Handler: h.Reservation.CheckReservation},
		})

		admin := v1.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authed := admin.Group("")
			authed.Use(authMiddleware.RequireAuth())

			readers := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}
			writers := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},

				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListReservations, Mw: readers},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.GetReservation, Mw: readers},
				{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: h.Reservation.UpdateStatus, Mw: writers},

				{Method: http.MethodGet, Path: "/packages", Handler: h.Catalog.AdminListPackages, Mw: readers},
				{Method: http.MethodPost, Path: "/packages", Handler: h.Catalog.CreatePackage, Mw: writers},
				{Method: http.MethodGet, Path: "/packages/:id", Handler: h.Catalog.AdminGetPackage, Mw: readers},
				{Method: http.MethodPut, Path: "/packages/:id", Handler: h.Catalog.UpdatePackage, Mw: writers},
				{Method: http.MethodDelete, Path: "/packages/:id", Handler: h.Catalog.DeletePackage, Mw: writers},

				{Method: http.MethodGet, Path: "/locations", Handler: h.Catalog.AdminListLocations, Mw: readers},
				{Method: http.MethodPost, Path: "/locations", Handler: h.Catalog.CreateLocation, Mw: writers},
				{Method: http.MethodGet, Path: "/locations/:id", Handler: h.Catalog.AdminGetLocation, Mw: readers},
				{Method: http.MethodPut, Path: "/locations/:id", Handler: h.Catalog.UpdateLocation, Mw: writers},
				{Method: http.MethodDelete, Path: "/locations/:id", Handler: h.Catalog.DeleteLocation, Mw: writers},
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
