package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nandoripardo888/TO--DO/pkg/response"
)

// MustGetUserID extracts the caller id injected by the JWT middleware.
// On failure it writes a 401 response; callers should return when ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}
