package web

import (
	"errors"
	"net/http"

	"go-jobboard/internal/delivery/http/middleware"
	"go-jobboard/internal/delivery/http/response"
	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"
	"go-jobboard/pkg/auth"
	"go-jobboard/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	sessions *auth.SessionManager
	revoked  auth.RevocationStore
	audit    *security.AuditLogger
	secure   bool
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, sessions *auth.SessionManager, revoked auth.RevocationStore, audit *security.AuditLogger, secure bool) {
	h := &AuthHandler{
		authUC:   authUC,
		sessions: sessions,
		revoked:  revoked,
		audit:    audit,
		secure:   secure,
	}

	r.GET("/register/", h.RegisterForm)
	r.POST("/register/", h.Register)
	r.GET("/login/", h.LoginForm)
	r.POST("/login/", h.Login)
	r.Any("/logout/", middleware.RequireLogin(), middleware.PostOnly(), h.Logout)
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	response.Form(c, http.StatusOK, "register.html", domain.RegisterInput{UserType: string(domain.UserTypeSeeker)}, nil, gin.H{"Title": "Register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	extra := gin.H{"Title": "Register"}
	var input domain.RegisterInput
	if !bindForm(c, &input, "register.html", extra) {
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), input)
	input.Password = ""
	if err != nil {
		renderFormError(c, err, "register.html", input, extra)
		return
	}

	if !h.startSession(c, user) {
		return
	}
	h.audit.Log(h.event(c, security.EventRegistered, user.Username, user.ID, ""))
	response.Redirect(c, "/")
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	response.Form(c, http.StatusOK, "login.html", domain.LoginInput{}, nil, gin.H{
		"Title": "Log in",
		"Next":  c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	next := c.PostForm("next")
	extra := gin.H{"Title": "Log in", "Next": next}
	var input domain.LoginInput
	if !bindForm(c, &input, "login.html", extra) {
		return
	}

	user, err := h.authUC.Authenticate(c.Request.Context(), input)
	input.Password = ""
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Fields != nil {
			h.audit.Log(h.event(c, security.EventLoginFailed, input.Username, 0, "invalid credentials"))
		}
		renderFormError(c, err, "login.html", input, extra)
		return
	}

	if !h.startSession(c, user) {
		return
	}
	h.audit.Log(h.event(c, security.EventLoginSuccess, user.Username, user.ID, ""))
	response.Redirect(c, safeNext(next))
}

// Logout revokes the token until it would have expired anyway.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := currentUser(c)
	id, expiresAt := middleware.CurrentSession(c)
	if id != "" {
		if err := h.revoked.Revoke(c.Request.Context(), id, expiresAt); err != nil {
			middleware.LoggerFromContext(c).Warn("Failed to revoke session", "error", err)
		}
	}
	middleware.ClearSessionCookie(c, h.secure)

	h.audit.Log(h.event(c, security.EventLogout, user.Username, user.ID, ""))
	response.Redirect(c, "/")
}

func (h *AuthHandler) startSession(c *gin.Context, user *domain.User) bool {
	session, err := h.sessions.Issue(user.ID)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return false
	}
	middleware.SetSessionCookie(c, session, h.secure)
	return true
}

func (h *AuthHandler) event(c *gin.Context, event security.EventType, username string, userID int64, reason string) security.AuditEvent {
	return security.AuditEvent{
		Event:     event,
		Username:  username,
		UserID:    userID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
		Reason:    reason,
	}
}
