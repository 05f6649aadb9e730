package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckAdmin gates the mutating admin routes. CheckAuth must run first; it
// sets the admin flag from the token's role claim.
func CheckAdmin(c *gin.Context) {
	isAdmin := c.MustGet("admin").(bool)

	if !isAdmin {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
}
