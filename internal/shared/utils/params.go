package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"issuehub/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewBadRequestError("invalid " + name)
	}
	return uint(value), nil
}

// CurrentUserID returns the authenticated user id placed in the context by the
// auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	return userID, nil
}
