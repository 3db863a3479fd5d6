package gate

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ignition-ceo/RaffleFox/internal/session"
)

// BypassParam is the debug query parameter that skips the gate for a
// single request, e.g. GET /api/v1/prizes?dev=1.
const BypassParam = "dev"

const sessionKey = "session"

// SessionFromContext returns the session stored by Protect, if any.
func SessionFromContext(c *gin.Context) *session.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}

// Protect wraps a route group with the access decision. Decisions map
// onto HTTP: loading is 503 with Retry-After, the sign-in redirect is a
// 307 preserving the requested location, denied is 403.
func Protect(sessions *session.Manager, requireAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := Input{
			AuthDisabled: sessions.AuthDisabled(),
			Bypass:       c.Query(BypassParam) == "1",
			Loading:      sessions.Loading(),
			RequireAdmin: requireAdmin,
		}

		var sess *session.Session
		if in.AuthDisabled {
			// Resolve ignores the token and hands back the synthetic
			// dev session.
			sess, _ = sessions.Resolve(c.Request.Context(), "")
		} else if !in.Bypass && !in.Loading {
			if token := bearerToken(c); token != "" {
				if resolved, err := sessions.Resolve(c.Request.Context(), token); err == nil {
					sess = resolved
				}
			}
			in.HasIdentity = sess != nil
			in.IsAdmin = sess.IsAdmin()
		}

		switch Decide(in) {
		case Loading:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session still resolving"})
		case Redirect:
			c.Redirect(http.StatusTemporaryRedirect, "/auth?from="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
		case Denied:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		default:
			if sess != nil {
				c.Set(sessionKey, sess)
			}
			c.Next()
		}
	}
}
