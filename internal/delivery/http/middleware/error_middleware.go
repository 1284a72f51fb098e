package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"go-jobboard/internal/delivery/http/response"
	"go-jobboard/pkg/apperror"
	"go-jobboard/pkg/security"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/login/"

// ErrorHandler turns the last error pushed with c.Error into a page:
// 401 redirects to login, other AppErrors render the error page with their
// status, anything else is logged and shown as a generic 500.
func ErrorHandler(audit *security.AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		switch appErr.Code {
		case http.StatusUnauthorized:
			response.Redirect(c, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			return

		case http.StatusForbidden:
			var userID int64
			if u := CurrentUser(c); u != nil {
				userID = u.ID
			}
			audit.Log(security.AuditEvent{
				Event:     security.EventAccessDenied,
				UserID:    userID,
				IP:        c.ClientIP(),
				RequestID: GetRequestID(c),
				Reason:    c.Request.Method + " " + c.Request.URL.Path,
			})

		case http.StatusInternalServerError:
			// Never expose internal error details to clients
			LoggerFromContext(c).Error("Internal server error", "error", errors.Unwrap(appErr))
		}

		response.Error(c, appErr.Code, appErr.Message)
	}
}

// Recovery renders the 500 page after a panic.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		LoggerFromContext(c).Error("Panic recovered", "panic", recovered)
		response.Error(c, http.StatusInternalServerError, "")
		c.Abort()
	})
}

// NotFound is installed as the router's NoRoute handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Page not found")
	}
}
