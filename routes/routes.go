package routes

import (
	"net/http"
	"time"

	"frontdesk/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDeskRoutes registers the front-desk endpoints.
func RegisterDeskRoutes(r *gin.Engine, h *handlers.DeskHandler) {
	api := r.Group("/api")
	{
		api.GET("/checkins", h.ListCheckinsHandler)
		api.POST("/checkins", h.CreateCheckinHandler)
		api.GET("/orders", h.ListOrdersHandler)
		api.POST("/orders", h.CreateOrderHandler)
		api.GET("/bills", h.ListBillsHandler)
		api.POST("/bills/:billID/pay", h.PayBillHandler)
		api.POST("/checkout", h.CheckoutHandler)
	}
}

// RegisterStatusRoutes registers the root status and diagnostics endpoints.
func RegisterStatusRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "hotel-frontdesk-api"})
	})
	r.GET("/test", handlers.DiagnosticsHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.DeskHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStatusRoutes(r)
	RegisterDeskRoutes(r, h)
}
