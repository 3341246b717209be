package api

import (
	"blognews-service/auth"
	"blognews-service/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "blognews-service"

// Setup wires the HTTP surface: content store, news aggregation, and the
// mocked auth flow, with CORS open for the reading UI.
func Setup(posts *PostHandler, newsH *NewsHandler, authH *AuthHandler, sessions *auth.SessionManager) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.PrometheusMiddleware(serviceName))

	// Health check endpoints
	r.GET("/", healthCheck)
	r.GET("/health", healthCheck)
	r.GET("/ready", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/logout", authH.Logout)

		api.GET("/posts", posts.ListPosts)
		api.GET("/posts/:id", posts.GetPost)
		api.POST("/posts/:id/like", posts.LikePost)
		api.POST("/posts/:id/comments/:commentId/like", posts.LikeComment)

		api.GET("/news/headlines", newsH.Headlines)
		api.GET("/news/live", newsH.Live)
		api.GET("/news/category/:category", newsH.ByCategory)
		api.GET("/news/search", newsH.Search)
		api.GET("/news/categories", newsH.Categories)
		api.POST("/news/refresh", newsH.Refresh)

		authed := api.Group("", RequireAuth(sessions))
		{
			authed.POST("/posts", posts.CreatePost)
			authed.PUT("/posts/:id", posts.UpdatePost)
			authed.DELETE("/posts/:id", posts.DeletePost)
			authed.POST("/posts/:id/comments", posts.AddComment)
			authed.POST("/posts/:id/comments/:commentId/replies", posts.AddReply)
			authed.PUT("/posts/:id/comments/:commentId", posts.UpdateComment)
			authed.DELETE("/posts/:id/comments/:commentId", posts.DeleteComment)
		}
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": serviceName})
}
