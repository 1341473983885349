package middleware

import (
	"log/slog"
	"net/http"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/pkg/cookie"
	"shiftboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxPrincipalKey = "principal"

type AuthMiddleware struct {
	resolver usecase.SessionResolver
}

func NewAuthMiddleware(resolver usecase.SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireSession resolves the session cookie into a principal and aborts
// with 401 otherwise. Authorization (role, tenant) is enforced further down
// in the usecases; this middleware only authenticates.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.TokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "No token provided",
			})
			c.Abort()
			return
		}

		principal, err := m.resolver.Resolve(token)
		if err != nil {
			slog.Warn("session resolution failed", "error", err.Error(), "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}

	principal, ok := v.(auth.Principal)
	return principal, ok
}
