package routes

import (
	"net/http"
	"time"

	"pgroster/handlers"
	"pgroster/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRosterRoutes sets up the endpoints for the roster builder.
func RegisterRosterRoutes(r *gin.Engine, rh *handlers.RosterHandler) {
	api := r.Group("/api/roster")
	{
		api.POST("", rh.BuildRosterHandler)
		api.POST("/export", rh.ExportRosterCSVHandler)
		api.GET("/defaults", rh.DefaultsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, rh *handlers.RosterHandler) {
	// The supervisor tool is a browser client, so CORS stays wide open.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogMiddleware())

	RegisterHealthRoute(r)
	RegisterRosterRoutes(r, rh)
}
