package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"imf-gadget-api/internal/pkg/jwtutil"
	"imf-gadget-api/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// AuthJWT gates a route group on a bearer token. A missing or non-Bearer
// header is 401, a token that fails verification (bad signature,
// malformed, expired) is 403. On success the identity lands on the gin
// context for downstream handlers.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Message(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Message(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
