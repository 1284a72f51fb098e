package middleware

import (
	"net/http"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// RequireLogin rejects anonymous requests with 401, rendered as a login redirect.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			_ = c.Error(apperror.Unauthorized("Authentication required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates a route on the principal's account type: anonymous gets
// 401, the other account type gets 403.
func RequireRole(role domain.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			_ = c.Error(apperror.Unauthorized("Authentication required"))
			c.Abort()
			return
		}
		if !user.HasRole(role) {
			_ = c.Error(apperror.Forbidden("You do not have permission to access this page."))
			c.Abort()
			return
		}
		c.Next()
	}
}

// PostOnly answers 403 to every method except POST.
func PostOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			_ = c.Error(apperror.Forbidden("This action requires a POST request."))
			c.Abort()
			return
		}
		c.Next()
	}
}
