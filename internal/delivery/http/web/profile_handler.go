package web

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go-jobboard/internal/delivery/http/middleware"
	"go-jobboard/internal/delivery/http/response"
	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"
	"go-jobboard/pkg/security"

	"github.com/gin-gonic/gin"
)

const resumeField = "resume_file"

// profileForm is the account-type specific half of the profile page.
type profileForm interface {
	template() string
	load(ctx context.Context) (form any, extra gin.H, err error)
	save(c *gin.Context) (form any, extra gin.H, err error)
}

type ProfileHandler struct {
	profileUC      domain.ProfileUsecase
	audit          *security.AuditLogger
	maxResumeBytes int64
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase, audit *security.AuditLogger, maxResumeBytes int64) {
	h := &ProfileHandler{profileUC: profileUC, audit: audit, maxResumeBytes: maxResumeBytes}

	r.GET("/profile/", h.Show)
	r.POST("/profile/", h.Update)
}

func (h *ProfileHandler) formFor(user *domain.User) profileForm {
	if user.IsRecruiter() {
		return &recruiterProfileForm{uc: h.profileUC, userID: user.ID}
	}
	return &seekerProfileForm{uc: h.profileUC, userID: user.ID, maxBytes: h.maxResumeBytes}
}

func (h *ProfileHandler) Show(c *gin.Context) {
	form := h.formFor(currentUser(c))
	values, extra, err := form.load(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	extra["Title"] = "Profile"
	extra["Saved"] = c.Query("saved") != ""
	response.Form(c, http.StatusOK, form.template(), values, nil, extra)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user := currentUser(c)
	form := h.formFor(user)
	values, extra, err := form.save(c)
	if err == nil {
		response.Redirect(c, "/profile/?saved=1")
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Fields[resumeField] != "" {
		h.audit.Log(security.AuditEvent{
			Event:     security.EventUploadRejected,
			Username:  user.Username,
			UserID:    user.ID,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			RequestID: middleware.GetRequestID(c),
			Reason:    appErr.Fields[resumeField],
		})
	}
	if extra == nil {
		extra = gin.H{}
	}
	extra["Title"] = "Profile"
	renderFormError(c, err, form.template(), values, extra)
}

type recruiterProfileForm struct {
	uc     domain.ProfileUsecase
	userID int64
}

func (f *recruiterProfileForm) template() string { return "profile_recruiter.html" }

func (f *recruiterProfileForm) load(ctx context.Context) (any, gin.H, error) {
	p, err := f.uc.GetRecruiterProfile(ctx, f.userID)
	if err != nil {
		return nil, nil, err
	}
	return domain.RecruiterProfileInput{
		CompanyName:        p.CompanyName,
		CompanyDescription: p.CompanyDescription,
		PhoneNumber:        p.PhoneNumber,
	}, gin.H{}, nil
}

func (f *recruiterProfileForm) save(c *gin.Context) (any, gin.H, error) {
	var input domain.RecruiterProfileInput
	if err := c.ShouldBind(&input); err != nil {
		return input, nil, apperror.FieldError("", invalidSubmission)
	}
	_, err := f.uc.UpdateRecruiterProfile(c.Request.Context(), f.userID, input)
	return input, nil, err
}

type seekerProfileForm struct {
	uc       domain.ProfileUsecase
	userID   int64
	maxBytes int64
}

func (f *seekerProfileForm) template() string { return "profile_seeker.html" }

func (f *seekerProfileForm) load(ctx context.Context) (any, gin.H, error) {
	p, err := f.uc.GetSeekerProfile(ctx, f.userID)
	if err != nil {
		return nil, nil, err
	}
	return domain.SeekerProfileInput{
		FullName: p.FullName,
		Headline: p.Headline,
		Skills:   p.Skills,
	}, gin.H{"ResumeFile": p.ResumeFile}, nil
}

func (f *seekerProfileForm) save(c *gin.Context) (any, gin.H, error) {
	current, err := f.uc.GetSeekerProfile(c.Request.Context(), f.userID)
	if err != nil {
		return nil, nil, err
	}
	extra := gin.H{"ResumeFile": current.ResumeFile}

	var input domain.SeekerProfileInput
	if err := c.ShouldBind(&input); err != nil {
		return input, extra, apperror.FieldError("", invalidSubmission)
	}

	resume, err := f.readResume(c)
	if err != nil {
		return input, extra, err
	}

	_, err = f.uc.UpdateSeekerProfile(c.Request.Context(), f.userID, input, resume)
	return input, extra, err
}

// readResume returns nil when no file was sent. At most maxBytes+1 bytes are
// read so oversized uploads are still detected downstream.
func (f *seekerProfileForm) readResume(c *gin.Context) (*domain.FileUpload, error) {
	header, err := c.FormFile(resumeField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperror.FieldError(resumeField, "The uploaded file could not be read.")
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, f.maxBytes+1))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.FileUpload{Filename: header.Filename, Data: data}, nil
}
