package middleware

import (
	"net/http"
	"time"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/auth"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "auth_token"

// SessionConfig wires LoadSession and the cookie helpers.
type SessionConfig struct {
	Manager *auth.SessionManager
	Revoked auth.RevocationStore
	AuthUC  domain.AuthUsecase
	Secure  bool
}

// LoadSession resolves the session cookie to a fresh user row. A missing,
// invalid, revoked or orphaned session leaves the request anonymous.
func LoadSession(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		log := LoggerFromContext(c)
		claims, err := cfg.Manager.Parse(token)
		if err != nil {
			ClearSessionCookie(c, cfg.Secure)
			c.Next()
			return
		}

		revoked, err := cfg.Revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Warn("Session revocation check failed", "error", err)
			c.Next()
			return
		}
		if revoked {
			ClearSessionCookie(c, cfg.Secure)
			c.Next()
			return
		}

		userID, _ := claims.UserID()
		user, err := cfg.AuthUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			ClearSessionCookie(c, cfg.Secure)
			c.Next()
			return
		}

		c.Set(string(domain.KeyUser), user)
		c.Set(string(domain.KeySessionID), claims.ID)
		c.Set(string(domain.KeySessionExpiry), claims.ExpiresAt.Time)
		c.Next()
	}
}

// CurrentUser is nil for anonymous requests.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(string(domain.KeyUser)); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// CurrentSession returns the id and expiry of the active session.
func CurrentSession(c *gin.Context) (string, time.Time) {
	return c.GetString(string(domain.KeySessionID)), c.GetTime(string(domain.KeySessionExpiry))
}

func SetSessionCookie(c *gin.Context, s auth.Session, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, s.Token, int(time.Until(s.ExpiresAt).Seconds()), "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
