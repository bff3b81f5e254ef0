package middleware

import (
	"context"
	"net/http"
	"strings"

	clientRepo "conectcliente/database/repository/client"
	"conectcliente/utils"

	"github.com/gin-gonic/gin"
)

type contextKey string

// clientIDKey carries the authenticated client ID on the request context so
// services below the HTTP layer can resolve the current identity.
const clientIDKey contextKey = "clientID"

// ClientIDFromContext reports the authenticated client ID, if any.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok && id != ""
}

// ClientAuthMiddleware validates the Bearer token, matches its hash against
// the stored profile, and binds the client ID to the request context.
func ClientAuthMiddleware(repo clientRepo.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Compute the token hash and resolve it to a client.
		computedHash := utils.HashToken(tokenString)
		rec, err := repo.GetByTokenHash(computedHash)
		if err != nil || rec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or client not found"})
			return
		}

		c.Set("clientID", rec.ID)
		ctx := context.WithValue(c.Request.Context(), clientIDKey, rec.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
