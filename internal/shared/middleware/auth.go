package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"clinic-cms/internal/shared/response"
)

// SessionVerifier checks a presented session credential.
type SessionVerifier interface {
	Verify(token string) bool
}

// SessionTokens returns the session cookie value and the
// "Authorization: Bearer" value. Either may be empty.
func SessionTokens(c *gin.Context, cookieName string) (cookie, bearer string) {
	cookie, _ = c.Cookie(cookieName)

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		bearer = strings.TrimSpace(parts[1])
	}
	return cookie, bearer
}

// Authenticated reports whether the cookie or the bearer credential verifies.
func Authenticated(c *gin.Context, verifier SessionVerifier, cookieName string) bool {
	cookie, bearer := SessionTokens(c, cookieName)
	if cookie != "" && verifier.Verify(cookie) {
		return true
	}
	return bearer != "" && verifier.Verify(bearer)
}

// RequireSession aborts with 401 before the handler runs unless the request
// carries a valid session cookie or bearer token.
func RequireSession(verifier SessionVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Authenticated(c, verifier, cookieName) {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("ip", ClientIPFrom(c)).
				Msg("Unauthenticated CMS request rejected")

			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
