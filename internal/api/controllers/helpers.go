package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"globetrotter/pkg/middleware"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// queryInt reads a positive integer query parameter; ok is false when present but invalid.
func queryInt(c *gin.Context, key string, def, max int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}
