package handler

import "github.com/gin-gonic/gin"

// Health handles the /healthz endpoint for liveness checks, responding
// appropriately per HTTP method and preventing caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
