package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SantoSarker101/airbnb-server/internal/api/handler"
	"github.com/SantoSarker101/airbnb-server/internal/api/middleware"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
	"github.com/SantoSarker101/airbnb-server/internal/core/service"
	mongorepo "github.com/SantoSarker101/airbnb-server/internal/infrastructure/db/mongo"
)

// Options carries everything NewRouter needs to wire the application. All
// dependencies are constructed by the caller and injected; no package-level
// state.
type Options struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Dispatcher ports.NotificationDispatcher
	Payments   ports.PaymentProvider
	JWTSecret  string
	TokenTTL   time.Duration
	Currency   string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(opts.DB)
	roomRepo := mongorepo.NewRoomRepository(opts.DB)
	bookingRepo := mongorepo.NewBookingRepository(opts.DB)

	userService := service.NewUserService(userRepo, opts.Logger)
	roomService := service.NewRoomService(roomRepo, opts.Logger)
	bookingService := service.NewBookingService(bookingRepo, opts.Dispatcher, opts.Logger)
	tokenService := service.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	paymentService := service.NewPaymentService(opts.Payments, opts.Currency, opts.Logger)

	userHandler := handler.NewUserHandler(userService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	tokenHandler := handler.NewTokenHandler(tokenService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	auth := middleware.Auth(opts.JWTSecret)
	ownEmail := middleware.RequireEmailMatch("email")

	// --- Liveness string (root) ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Marketplace server is running..")
	})

	// --- Users ---
	e.PUT("/users/:email", userHandler.Upsert)
	e.GET("/users/:email", userHandler.Get)

	// --- Rooms ---
	e.GET("/rooms", roomHandler.List)
	e.GET("/room/:id", roomHandler.Get)
	e.GET("/rooms/:email", roomHandler.ListByHost, auth, ownEmail)
	e.POST("/rooms", roomHandler.Create)
	e.PATCH("/rooms/status/:id", roomHandler.UpdateStatus)
	e.PUT("/rooms/:id", roomHandler.Replace, auth)
	e.DELETE("/rooms/:id", roomHandler.Delete)

	// --- Bookings ---
	e.GET("/bookings", bookingHandler.ListByGuest)
	e.GET("/bookings/host", bookingHandler.ListByHost)
	e.POST("/bookings", bookingHandler.Create)
	e.DELETE("/bookings/:id", bookingHandler.Delete)

	// --- Tokens & payments ---
	e.POST("/jwt", tokenHandler.Issue)
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, auth)

	// --- Observability ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.DB, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
