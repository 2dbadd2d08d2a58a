package routes

import (
	"net/http"
	"time"

	"fixly/handlers"
	"fixly/middleware"
	"fixly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetUserHandler)
		api.POST("/logout", hb.SignoutUserHandler)
	}
}

// RegisterHandymanRoutes registers profile, search and availability endpoints.
func RegisterHandymanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/handymen")
	{
		// Public discovery endpoints.
		api.POST("/search", hb.SearchHandymenHandler)
		api.GET("/vocabulary", hb.VocabularyHandler)
		api.GET("/id/:id", hb.GetHandymanByIDHandler)
		api.GET("/:id/slots", hb.SlotsHandler)

		// Registration needs a user session but no existing profile.
		api.POST("/register", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.RegisterHandymanHandler)

		// Endpoints that modify profile data require the owning handyman.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthHandymanMiddleware(hb.UserRepo, hb.HandymanRepo))
		protected.PATCH("/update/:id", hb.UpdateHandymanHandler)
		protected.DELETE("/delete/:id", hb.DeleteHandymanHandler)
		protected.PUT("/:id/availability", hb.UpdateAvailabilityHandler)
		protected.POST("/:id/skills", hb.AddSkillHandler)
		protected.DELETE("/:id/skills/:name", hb.RemoveSkillHandler)
	}
}

// RegisterTaskRoutes registers task endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tasks")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateTaskHandler)
		api.GET("", hb.ListTasksHandler)
		api.DELETE("/:id", hb.DeleteTaskHandler)
		api.GET("/:id/price-breakdown", hb.TaskPriceBreakdownHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("/user/:id", hb.GetUserBookingsHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterPricingRoutes registers the public pricing endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/pricing/:category", hb.PricingByCategoryHandler)
	r.GET("/api/currencies", hb.ListCurrenciesHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterHandymanRoutes(r, hb)
	RegisterTaskRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
}
