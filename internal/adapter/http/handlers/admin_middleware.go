package handlers

import (
	"crypto/subtle"
	"net/http"

	"casas_prefab/pkg"

	"github.com/gin-gonic/gin"
)

const HeaderAdminKey = "X-Admin-Key"

var errUnauthorizedAdmin = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid admin key", http.StatusUnauthorized)

// RequireAdminKey rejects requests whose X-Admin-Key header differs from key.
// An empty key disables the check, which is how local environments run.
func RequireAdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		got := c.GetHeader(HeaderAdminKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(errUnauthorizedAdmin.HTTPStatus, errUnauthorizedAdmin.ToHTTPError())
			return
		}
		c.Next()
	}
}
