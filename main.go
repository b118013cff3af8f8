// File: storely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storely/config"
	"storely/cron"
	"storely/database"
	bookingRepoPkg "storely/database/repository/booking"
	paymentRepoPkg "storely/database/repository/payment"
	unitRepoPkg "storely/database/repository/unit"
	userRepoPkg "storely/database/repository/user"
	"storely/handlers"
	"storely/middleware"
	"storely/routes"
	"storely/services/booking"
	"storely/services/payment"
	"storely/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	unitRepo := unitRepoPkg.NewMongoUnitRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		UnitRepo: unitRepo,
		UserRepo: userRepo,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:        paymentRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		UnitRepo:    unitRepo,
		Gateway:     payment.NewStripeInvoiceGateway(),
		Confirmer:   bookingService,
		FeePercent:  config.AppConfig.PlatformFeePercent,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Payment: handlers.NewPaymentHandler(paymentService, logger),
		Webhook: handlers.NewWebhookHandler(paymentService, utils.GetCacheClient(), logger),
		Unit:    handlers.NewUnitHandler(unitRepo),
		User:    handlers.NewUserHandler(userRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	cron.InitReconcileWorker(paymentService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
