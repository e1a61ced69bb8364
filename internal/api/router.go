package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/config"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/handler"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/middleware"
)

// Handlers groups the handlers wired into the router
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Location     *handler.LocationHandler
	Review       *handler.ReviewHandler
	Message      *handler.MessageHandler
	Follow       *handler.FollowHandler
	Notification *handler.NotificationHandler
	Map          *handler.MapHandler
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Travel Guide API is running",
		})
	})

	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		// Authentication
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
		}

		// Users and follow graph
		users := api.Group("/users")
		{
			users.GET("/me", auth, h.User.GetMe)
			users.PUT("/me", auth, h.User.UpdateMe)
			users.GET("/:id", optionalAuth, h.User.GetProfile)
			users.GET("/:id/followers", h.Follow.Followers)
			users.GET("/:id/following", h.Follow.Following)
			users.POST("/:id/follow", auth, h.Follow.Follow)
			users.DELETE("/:id/follow", auth, h.Follow.Unfollow)
		}

		// Locations and their reviews
		locations := api.Group("/locations")
		{
			locations.GET("", h.Location.List)
			locations.GET("/nearby", h.Location.Nearby)
			locations.GET("/:id", h.Location.Get)
			locations.POST("", auth, h.Location.Create)
			locations.PUT("/:id", auth, h.Location.Update)
			locations.DELETE("/:id", auth, h.Location.Delete)

			locations.GET("/:id/reviews", h.Review.ListByLocation)
			locations.GET("/:id/reviews/summary", h.Review.Summary)
			locations.POST("/:id/reviews", auth, h.Review.Create)
		}

		// Reviews addressed by their own id
		reviews := api.Group("/reviews")
		{
			reviews.PUT("/:id", auth, h.Review.Update)
			reviews.DELETE("/:id", auth, h.Review.Delete)
		}

		// Direct messages
		messages := api.Group("/messages", auth)
		{
			messages.GET("", h.Message.Conversations)
			messages.POST("", h.Message.Send)
			messages.GET("/:id", h.Message.Conversation)
			messages.POST("/:id/read", h.Message.MarkRead)
		}

		// Notifications
		notifications := api.Group("/notifications", auth)
		{
			notifications.GET("", h.Notification.List)
			notifications.POST("/read-all", h.Notification.MarkAllRead)
			notifications.POST("/:id/read", h.Notification.MarkRead)
		}

		// Map markers and density heatmap
		mapGroup := api.Group("/map")
		{
			mapGroup.GET("/markers", h.Map.Markers)
			mapGroup.GET("/heatmap", h.Map.Heatmap)
		}
	}

	return r
}
