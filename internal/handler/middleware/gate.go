package middleware

import (
	"net/http"
	"strings"

	"shiftboard/internal/pkg/cookie"
	"shiftboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

// Browser navigation prefixes that require a session.
var gatedPrefixes = []string{
	"/dashboard",
	"/shifts",
	"/time-tracking",
	"/employees",
	"/company",
	"/profile",
}

// PageGate fronts browser navigation: any request under a gated prefix
// without a resolvable session is redirected to the login page instead of
// receiving a status code. Resolution happens in-process; routing the check
// through a verify endpoint over HTTP would add a network failure mode that
// redirects validly authenticated users.
func PageGate(resolver usecase.SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isGatedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		token := cookie.TokenFromRequest(c)
		if _, err := resolver.Resolve(token); err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

func isGatedPath(path string) bool {
	for _, prefix := range gatedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
