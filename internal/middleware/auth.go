package middleware

import (
	"net/http"
	"strings"

	"github.com/Vayom/market-place/internal/user"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			c.Abort()
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		setIdentity(c, &Identity{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     claims.Role,
			IsSeller: claims.IsSeller,
		})
		c.Next()
	}
}

// AuthOptional sets the identity when a valid token is present and lets
// anonymous requests through.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, &Identity{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     claims.Role,
			IsSeller: claims.IsSeller,
		})
		c.Next()
	}
}

// RequireSeller gates catalog mutation. Runs after AuthRequired.
func RequireSeller() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			c.Abort()
			return
		}
		if !ident.IsSeller {
			c.JSON(http.StatusForbidden, gin.H{"error": "seller account required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates staff-only routes. Runs after AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			c.Abort()
			return
		}
		if !ident.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
