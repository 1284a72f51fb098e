package web

import (
	"log/slog"
	"net/http"

	"go-jobboard/config"
	"go-jobboard/internal/delivery/http/middleware"
	"go-jobboard/internal/domain"
	"go-jobboard/pkg/auth"
	"go-jobboard/pkg/metrics"
	"go-jobboard/pkg/security"
	templates "go-jobboard/web"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	SavedJobUC    domain.SavedJobUsecase
	Sessions      *auth.SessionManager
	Revoked       auth.RevocationStore
	Audit         *security.AuditLogger
	Metrics       *metrics.HTTPMetrics
	Logger        *slog.Logger
	Config        *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	tmpl, err := templates.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	// Room for the resume plus the other profile fields
	r.MaxMultipartMemory = deps.Config.MaxResumeBytes + 1<<20

	secure := deps.Config.CookieSecure

	// Global Middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	r.Use(middleware.SecurityHeaders(secure))
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler(deps.Audit))
	r.Use(middleware.CSRF(secure))
	r.Use(middleware.LoadSession(middleware.SessionConfig{
		Manager: deps.Sessions,
		Revoked: deps.Revoked,
		AuthUC:  deps.AuthUC,
		Secure:  secure,
	}))
	r.NoRoute(middleware.NotFound())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	public := r.Group("")

	authenticated := r.Group("")
	authenticated.Use(middleware.RequireLogin())

	recruiter := r.Group("")
	recruiter.Use(middleware.RequireRole(domain.UserTypeRecruiter))

	seeker := r.Group("")
	seeker.Use(middleware.RequireRole(domain.UserTypeSeeker))

	{
		NewAuthHandler(public, deps.AuthUC, deps.Sessions, deps.Revoked, deps.Audit, secure)
		NewJobHandler(public, recruiter, deps.JobUC)
		NewProfileHandler(authenticated, deps.ProfileUC, deps.Audit, deps.Config.MaxResumeBytes)
		NewApplicationHandler(seeker, recruiter, deps.ApplicationUC, deps.JobUC)
		NewSavedJobHandler(seeker, deps.SavedJobUC)
	}

	return r, nil
}
