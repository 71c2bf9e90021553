package router

import (
	"log"
	"time"

	"wabiz/middleware"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status, latency and request id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log.Printf("[%s] %s %s -> %d (%s)", middleware.RequestIDFrom(c), c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	}
}
