package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pro-video-services/internal/handler/api"
	"pro-video-services/internal/handler/middleware"
	"pro-video-services/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler so the router has a single fx dependency.
type Handlers struct {
	Health  *api.HealthHandler
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Video   *api.VideoHandler
	Client  *api.ClientHandler
	Payment *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger, limiter)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(limiter.Middleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/health", Handler: h.Health.Health},
			{Method: http.MethodGet, Path: "/pricing", Handler: h.Video.Tiers},
			{Method: http.MethodGet, Path: "/campaigns/pricing", Handler: h.Video.Campaigns},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.GetAvailability},
				{Method: http.MethodPost, Path: "/book", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking, Mw: []gin.HandlerFunc{admin}},
			})
		}

		videos := apiGroup.Group("/videos")
		{
			addRoutes(videos, []route{
				{Method: http.MethodGet, Path: "/providers", Handler: h.Video.ListProviders},
				{Method: http.MethodPost, Path: "/quote", Handler: h.Video.Quote},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(admin)
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Client.ListClients},
				{Method: http.MethodPost, Path: "", Handler: h.Client.CreateClient},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Client.GetClient},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Client.UpdateClient},
				{Method: http.MethodPost, Path: "/:id/projects", Handler: h.Client.CreateProject},
				{Method: http.MethodPost, Path: "/:id/projects/:projectId/generate-video", Handler: h.Client.GenerateVideo},
				{Method: http.MethodPost, Path: "/:id/communications", Handler: h.Client.LogCommunication},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/create-intent", Handler: h.Payment.CreatePayment},
				{Method: http.MethodGet, Path: "/status/:id", Handler: h.Payment.GetPaymentStatus, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/webhook", Handler: h.Payment.Webhook},
			})
		}
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
