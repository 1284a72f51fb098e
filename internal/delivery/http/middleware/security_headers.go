package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds browser hardening headers to every page. HSTS is only
// sent when the site is served over TLS.
func SecurityHeaders(hsts bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hsts {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"frame-ancestors 'none'; "+
				"base-uri 'self'; "+
				"form-action 'self'")

		// Pages are personalised once signed in
		if _, err := c.Cookie(SessionCookieName); err == nil {
			c.Header("Cache-Control", "no-store, private")
		}

		c.Next()
	}
}
