package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// callerUserID reads the user_id query parameter that identifies the caller
// on ownership-scoped routes. Zero with ok=false means the value was missing
// or malformed and a 400 should be returned before any service call.
func callerUserID(c *gin.Context) (uint, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		raw = c.PostForm("user_id")
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}
