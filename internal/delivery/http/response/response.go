package response

import (
	"net/http"

	"go-jobboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// HTML renders a page, adding the values every layout needs: the current
// user, the CSRF token and the request id.
func HTML(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	var user *domain.User
	if v, ok := c.Get(string(domain.KeyUser)); ok {
		user, _ = v.(*domain.User)
	}
	data["CurrentUser"] = user
	data["CSRFToken"] = c.GetString(string(domain.KeyCSRFToken))
	data["RequestID"] = c.GetString(string(domain.KeyRequestID))
	data["Path"] = c.Request.URL.Path

	c.HTML(code, name, data)
}

// Error renders the generic error page. Details never reach the client.
func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = http.StatusText(code)
	}
	HTML(c, code, "error.html", gin.H{
		"Title":   http.StatusText(code),
		"Code":    code,
		"Message": message,
	})
}

// Redirect sends a 302 like a form-post-redirect-get cycle expects.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// Form re-renders a form page with its submitted values and field errors.
func Form(c *gin.Context, code int, name string, form any, errors map[string]string, extra gin.H) {
	data := gin.H{"Form": form, "Errors": errors}
	for k, v := range extra {
		data[k] = v
	}
	HTML(c, code, name, data)
}
