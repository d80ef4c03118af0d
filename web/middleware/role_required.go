package middleware

import (
	"net/http"

	"ofs-panel/web/session"

	"github.com/gin-gonic/gin"
)

// RoleRequired only lets through signed-in users holding one of the given
// roles. It assumes a login check already ran earlier in the chain.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}
