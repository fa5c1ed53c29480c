package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// CacheControl marks catalog responses as shared-cacheable: fresh for maxAge
// seconds, then served stale while a CDN revalidates in the background. This
// is the only caching policy the application itself sets; nothing is cached
// in-process.
func CacheControl(maxAge, staleWhileRevalidate int) gin.HandlerFunc {
	value := fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", maxAge, staleWhileRevalidate)
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
