package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// CacheControl marks successful GET responses as publicly cacheable for
// maxAgeSeconds. Other methods are told not to cache.
func CacheControl(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAgeSeconds))
		} else {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
