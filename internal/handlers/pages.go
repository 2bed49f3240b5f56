package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"message":   "Inkpress is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func About(c *gin.Context) {
	c.JSON(200, gin.H{
		"title": "About",
		"body":  "Inkpress is a small multi-user blog: read the posts, sign up to comment.",
	})
}

func Contact(c *gin.Context) {
	c.JSON(200, gin.H{
		"title": "Contact",
		"body":  "Questions or feedback? Reach the author at the address on the home page.",
	})
}
