package utils

import (
	"github.com/gin-gonic/gin"
)

// HeaderUserID is the header the identity collaborator puts the caller's
// opaque user id in. The service never authenticates; it trusts this value
// the way it would trust a session user handed over by the auth layer.
const HeaderUserID = "X-User-ID"

// userIDKey is the gin context key the middleware stores the caller under
const userIDKey = "current_user_id"

// SetCurrentUser stores the caller's user id on the request context
func SetCurrentUser(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

// CurrentUser returns the caller's user id, or "" when unauthenticated
func CurrentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}
