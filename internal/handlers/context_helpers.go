package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zaferdrn0/Fzy-sub000/internal/middleware"
)

// actingUserID returns the authenticated staff user for audit trails,
// nil on unauthenticated routes.
func actingUserID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
