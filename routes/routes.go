package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storely/handlers"
	"storely/middleware"
	"storely/utils"
)

// HandlerBundle aggregates the HTTP handlers wired in main.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
	Webhook *handlers.WebhookHandler
	Unit    *handlers.UnitHandler
	User    *handlers.UserHandler
}

// RegisterRoutes registers all endpoints on the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	// Webhook endpoint is signature-verified, not token-authenticated.
	r.POST("/api/webhooks/stripe", hb.Webhook.HandleStripeEvent)

	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
}

// RegisterUserRoutes registers user and unit endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	users := r.Group("/api/users")
	{
		users.POST("", hb.User.CreateUser)

		protected := users.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/:id", hb.User.GetUser)
		protected.PUT("/:id/billing", hb.User.UpdateBilling)
	}

	units := r.Group("/api/units")
	{
		units.GET("", hb.Unit.ListUnits)
		units.GET("/:id", hb.Unit.GetUnit)

		protected := units.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Unit.CreateUnit)
	}
}
