package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the preview HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware so local frontends can consume the data endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Feed endpoints
	r.GET("/feeds/:type", handler.GetFeed)

	// Corpus data endpoints
	r.GET("/posts", handler.ListPosts)
	r.GET("/posts/*permalink", handler.GetPostByPermalink)
	r.GET("/pages", handler.ListPages)
	r.GET("/tags", handler.ListTags)
	r.GET("/authors", handler.ListAuthors)
	r.GET("/chronology", handler.GetChronology)
	r.GET("/sidebar", handler.GetSidebar)

	// Health and rebuild endpoints
	r.GET("/health", handler.HealthCheck)
	r.POST("/rebuild", handler.Rebuild)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Blogcomb",
			"version":     handler.Version(),
			"description": "Blog content pipeline: ingestion, metadata derivation, listings and feeds",
			"endpoints": map[string]string{
				"feed":       "/feeds/<rss|atom|json>",
				"posts":      "/posts",
				"post":       "/posts/<permalink>",
				"pages":      "/pages",
				"tags":       "/tags",
				"authors":    "/authors",
				"chronology": "/chronology",
				"sidebar":    "/sidebar",
				"health":     "/health",
				"rebuild":    "/rebuild (POST)",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
