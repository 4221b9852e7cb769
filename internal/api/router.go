package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hotelhub/hotel-admin/docs"
	"github.com/hotelhub/hotel-admin/internal/api/handler"
	"github.com/hotelhub/hotel-admin/internal/api/middleware"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// Dependencies is everything the router wires into handlers and middleware.
type Dependencies struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Bookings   ports.BookingService
	Rooms      ports.RoomService
	Categories ports.CategoryService
	Gallery    ports.GalleryService

	Tokens middleware.TokenVerifier
	// LoginLimiter is optional; nil disables login rate limiting.
	LoginLimiter middleware.AttemptLimiter
	Health       []handler.Dependency

	Logger       zerolog.Logger
	ExposeErrors bool

	// MetricsRegistry defaults to the global Prometheus registry.
	MetricsRegistry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.ExposeErrors)
	e.Validator = handler.NewValidator()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.MetricsRegistry != nil {
		registerer, gatherer = deps.MetricsRegistry, deps.MetricsRegistry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "hotel",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API: the caller's identity is resolved once for every route ---
	api := e.Group("/api", middleware.ResolveIdentity(deps.Tokens))

	authenticated := middleware.RequireAuthenticated()
	adminOnly := []echo.MiddlewareFunc{authenticated, middleware.RequireAdmin()}

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	users := api.Group("/users")
	users.POST("", authHandler.Register)
	users.POST("/login", authHandler.Login, middleware.LoginRateLimit(deps.LoginLimiter, deps.Logger))
	users.GET("/me", authHandler.Me, authenticated)
	users.GET("", userHandler.List, adminOnly...)
	users.GET("/:key", userHandler.Get, adminOnly...)
	users.PUT("/:key", userHandler.Update, adminOnly...)
	users.DELETE("/:key", userHandler.Delete, adminOnly...)
	users.PATCH("/:key/toggle", userHandler.Toggle, adminOnly...)
	users.PATCH("/:key/block", userHandler.Block, adminOnly...)
	users.PATCH("/:key/unblock", userHandler.Unblock, adminOnly...)

	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	booking := api.Group("/booking")
	booking.POST("", bookingHandler.Create, authenticated)
	booking.GET("", bookingHandler.List, adminOnly...)
	booking.GET("/:bookingId", bookingHandler.Get, adminOnly...)
	booking.PUT("/:bookingId", bookingHandler.Update, adminOnly...)
	booking.DELETE("/:bookingId", bookingHandler.Delete, adminOnly...)

	roomHandler := handler.NewRoomHandler(deps.Rooms)
	rooms := api.Group("/rooms")
	rooms.GET("", roomHandler.List)
	rooms.GET("/category/:category", roomHandler.ListByCategory)
	rooms.GET("/:roomId", roomHandler.Get)
	rooms.POST("", roomHandler.Create, adminOnly...)
	rooms.PUT("/:roomId", roomHandler.Update, adminOnly...)
	rooms.DELETE("/:roomId", roomHandler.Delete, adminOnly...)

	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:name", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, adminOnly...)
	categories.PUT("/:name", categoryHandler.Update, adminOnly...)
	categories.DELETE("/:name", categoryHandler.Delete, adminOnly...)
	categories.PATCH("/:name/toggle", categoryHandler.Toggle, adminOnly...)

	galleryHandler := handler.NewGalleryHandler(deps.Gallery)
	gallery := api.Group("/gallery")
	gallery.GET("", galleryHandler.List)
	gallery.POST("", galleryHandler.Create, adminOnly...)
	gallery.PUT("/:name", galleryHandler.Update, adminOnly...)
	gallery.DELETE("/:name", galleryHandler.Delete, adminOnly...)
	gallery.PATCH("/:name/toggle", galleryHandler.Toggle, adminOnly...)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
