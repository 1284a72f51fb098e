package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go-jobboard/internal/delivery/http/middleware"
	"go-jobboard/internal/delivery/http/response"
	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const invalidSubmission = "The submitted form could not be read."

// parseID reads a positive integer path parameter. Anything else is a 404.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperror.NotFound("Page not found"))
		return 0, false
	}
	return id, true
}

// currentUser is only called behind RequireLogin or RequireRole.
func currentUser(c *gin.Context) *domain.User {
	return middleware.CurrentUser(c)
}

// renderFormError re-renders the form for validation errors and hands every
// other error to the error middleware.
func renderFormError(c *gin.Context, err error, name string, form any, extra gin.H) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Fields != nil {
		response.Form(c, appErr.Code, name, form, appErr.Fields, extra)
		return
	}
	_ = c.Error(err)
}

// bindForm binds the posted form and re-renders it on malformed input.
func bindForm(c *gin.Context, input any, name string, extra gin.H) bool {
	if err := c.ShouldBind(input); err != nil {
		response.Form(c, http.StatusBadRequest, name, input, map[string]string{"": invalidSubmission}, extra)
		return false
	}
	return true
}

// safeNext only follows local absolute paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	return next
}
