package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/inkpress-dev/inkpress/internal/handlers"
	"github.com/inkpress-dev/inkpress/internal/middleware"
	"github.com/inkpress-dev/inkpress/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/about", handlers.About)
	r.GET("/contact", handlers.Contact)

	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)
	r.GET("/me", middleware.AuthMiddleware(), handlers.Me)

	r.GET("/", handlers.ListPosts)
	r.GET("/post/:id", handlers.GetPost)
	r.POST("/post/:id", middleware.AuthMiddleware(), handlers.CreateComment)

	admin := r.Group("", middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/new-post", handlers.CreatePost)
		admin.POST("/edit-post/:id", handlers.UpdatePost)
		admin.GET("/delete/:id", handlers.DeletePost)
	}

	return r
}
