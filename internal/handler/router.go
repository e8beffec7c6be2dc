package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/pkg/config"
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
	venueHandler *api.VenueHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, venueHandler, bookingHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	venueHandler *api.VenueHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: venueHandler.ListVenues},
				{Method: http.MethodGet, Path: "/:id", Handler: venueHandler.GetVenue},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: venueHandler.GetDaySlots},
			})

			ownerRequired := venues.Group("")
			ownerRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOwner))
			addRoutes(ownerRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: venueHandler.RegisterVenue},
				{Method: http.MethodPut, Path: "/:id/schedule", Handler: venueHandler.UpdateSchedule},
				{Method: http.MethodGet, Path: "/:id/blockouts", Handler: venueHandler.ListBlockouts},
				{Method: http.MethodPost, Path: "/:id/blockouts", Handler: venueHandler.AddBlockout},
				{Method: http.MethodDelete, Path: "/:id/blockouts/:blockoutId", Handler: venueHandler.RemoveBlockout},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: venueHandler.ListVenueBookings},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.ConfirmPayment},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleSuperAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/venues/pending", Handler: adminHandler.ListPendingVenues},
				{Method: http.MethodPost, Path: "/venues/:id/approve", Handler: adminHandler.ApproveVenue},
				{Method: http.MethodPost, Path: "/venues/:id/reject", Handler: adminHandler.RejectVenue},
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
