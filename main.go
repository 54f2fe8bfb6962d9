package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/phonemarket/resale-service/config"
	"github.com/phonemarket/resale-service/internal/handler"
	"github.com/phonemarket/resale-service/internal/middleware"
	"github.com/phonemarket/resale-service/internal/repository"
	"github.com/phonemarket/resale-service/internal/service"
	"github.com/phonemarket/resale-service/pkg/database"
	"github.com/phonemarket/resale-service/pkg/rabbitmq"
	"github.com/phonemarket/resale-service/pkg/stripe"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional payment.completed notification publisher
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	// Services
	tokenSvc := service.NewTokenService(userRepo, cfg.JWTSecret)
	paymentSvc := service.NewPaymentService(
		listingRepo, bookingRepo, paymentRepo, wishlistRepo,
		stripe.NewClient(cfg.StripeSecret), publisher,
	)
	reportSvc := service.NewReportService(reportRepo, listingRepo)

	// Guards
	auth := middleware.Auth(tokenSvc)
	admin := middleware.AdminOnly(userRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "resale-service"})
	})

	handler.NewCategoryHandler(categoryRepo).RegisterRoutes(e)
	handler.NewUserHandler(userRepo, tokenSvc).RegisterRoutes(e, auth, admin)
	handler.NewListingHandler(listingRepo).RegisterRoutes(e, auth)
	handler.NewBookingHandler(bookingRepo, listingRepo).RegisterRoutes(e, auth)
	handler.NewPaymentHandler(paymentSvc).RegisterRoutes(e, auth)
	handler.NewReportHandler(reportRepo, reportSvc).RegisterRoutes(e, auth, admin)
	handler.NewWishlistHandler(wishlistRepo).RegisterRoutes(e, auth)

	log.Printf("Resale Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
