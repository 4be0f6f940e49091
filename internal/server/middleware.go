package server

import (
	"errors"
	"net/http"
	"time"

	"sharelocal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"user":    utils.CurrentUser(c),
		"latency": time.Since(start).String(),
	})
}

// CurrentUserMiddleware extracts the caller's user id supplied by the
// identity collaborator. Routes behind it always have an explicit user;
// operations never fall back to ambient identity.
func CurrentUserMiddleware(c *gin.Context) {
	userID := c.GetHeader(utils.HeaderUserID)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized,
			errors.New("missing "+utils.HeaderUserID+" header"), "authentication required")
		c.Abort()
		return
	}

	utils.SetCurrentUser(c, userID)
	c.Next()
}
