package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dishcovery/backend/internal/types"
)

// TokenValidator verifies a session token and returns the identity it carries.
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// Context keys populated for downstream handlers once a token checks out.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// AuthMiddleware rejects requests that do not carry a valid bearer token.
// The scheme name is matched case-insensitively.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) == 0 {
			abortUnauthorized(c, "authorization required")
			return
		}
		if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
			abortUnauthorized(c, "authorization must use the Bearer scheme")
			return
		}

		claims, err := validator.ValidateToken(fields[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
