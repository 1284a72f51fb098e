package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenFieldName is the hidden form field rendered into every POST form
	CSRFTokenFieldName = "csrf_token"
	// CSRFTokenHeaderName is accepted instead of the form field
	CSRFTokenHeaderName = "X-CSRF-Token"
	// 32 bytes = 64 hex chars
	CSRFTokenLength = 32
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRF implements the double-submit cookie pattern. Safe methods only get a
// token issued; every other method must echo the cookie value back in the
// form field or the header.
func CSRF(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || len(token) != 2*CSRFTokenLength {
			token, err = generateCSRFToken()
			if err != nil {
				_ = c.Error(apperror.Internal(err))
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFTokenCookieName, token, int(CSRFTokenExpiry.Seconds()), "/", "", secure, false)
			// A freshly issued token cannot match anything the client sent
			if !isSafeMethod(c.Request.Method) {
				_ = c.Error(apperror.Forbidden("CSRF verification failed."))
				c.Abort()
				return
			}
		}
		c.Set(string(domain.KeyCSRFToken), token)

		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFieldName)
		}
		if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
			_ = c.Error(apperror.Forbidden("CSRF verification failed."))
			c.Abort()
			return
		}

		c.Next()
	}
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
