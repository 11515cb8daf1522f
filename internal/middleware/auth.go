package middleware

import (
	"strings"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/pkg/jwt"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const contextKeyIdentity = "identity"

// Auth returns a middleware that enforces JWT authentication and puts
// the caller's identity on the context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := identityFromToken(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyIdentity, ident)
		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present but does
// not block the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident, err := identityFromToken(extractToken(c)); err == nil {
			c.Set(contextKeyIdentity, ident)
		}
		c.Next()
	}
}

func identityFromToken(token string) (access.Identity, error) {
	claims, err := jwt.Parse(token)
	if err != nil {
		return access.Identity{}, err
	}
	role, err := access.ParseRole(claims.Role)
	if err != nil {
		return access.Identity{}, err
	}
	return access.Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}, nil
}

// CurrentIdentity extracts the authenticated identity from context. The
// zero Identity means anonymous.
func CurrentIdentity(c *gin.Context) access.Identity {
	v, _ := c.Get(contextKeyIdentity)
	ident, _ := v.(access.Identity)
	return ident
}

// IsAuthenticated reports whether the request carries a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return !CurrentIdentity(c).IsZero()
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
