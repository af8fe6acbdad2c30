package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/gateway-client/internal/adapters/http/dto"
	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// BasicAuth returns middleware that accepts only the given secret key as the
// basic auth username. The password is ignored. Failures get the gateway's
// 401 authentication_error envelope.
func BasicAuth(secretKey string) gin.HandlerFunc {
	want := []byte(secretKey)

	return func(c *gin.Context) {
		user, _, ok := c.Request.BasicAuth()
		if !ok || secretKey == "" || subtle.ConstantTimeCompare([]byte(user), want) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="gateway"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(domain.KindAuthentication, dto.MessageUnauthorized))
			return
		}

		c.Next()
	}
}
