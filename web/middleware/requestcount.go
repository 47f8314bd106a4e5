// Package middleware provides gin middleware shared by the web server.
package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
)

var handled = atomic.NewInt64(0)

// RequestCounter counts every handled request for the status endpoint.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		handled.Inc()
		c.Next()
	}
}

// HandledRequests returns the number of requests served since startup.
func HandledRequests() int64 {
	return handled.Load()
}
