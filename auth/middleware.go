package auth

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "user_id"
	RolesKey  = "roles"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RequireUser rejects requests without a valid bearer token and stores the caller's identity in the gin context.
func RequireUser(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, issuer)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalUser attaches the caller's identity when a valid token is present, anonymous requests pass through.
func OptionalUser(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, issuer); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RequireRole rejects callers whose token lacks role. It must run after RequireUser.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(Roles(c), role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// Roles returns the roles carried by the caller's token.
func Roles(c *gin.Context) []string {
	roles, _ := c.Get(RolesKey)
	r, _ := roles.([]string)
	return r
}

// UserID returns the authenticated user id, empty for anonymous callers.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func bearerClaims(c *gin.Context, issuer *TokenIssuer) (*CustomClaims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims, err := issuer.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *CustomClaims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(RolesKey, claims.Roles)
}
