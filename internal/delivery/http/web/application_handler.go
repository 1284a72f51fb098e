package web

import (
	"net/http"
	"strconv"

	"go-jobboard/internal/delivery/http/middleware"
	"go-jobboard/internal/delivery/http/response"
	"go-jobboard/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
	jobUC domain.JobUsecase
}

func NewApplicationHandler(seeker *gin.RouterGroup, recruiter *gin.RouterGroup, appUC domain.ApplicationUsecase, jobUC domain.JobUsecase) {
	h := &ApplicationHandler{appUC: appUC, jobUC: jobUC}

	// SEEKER routes
	seeker.GET("/jobs/:id/apply/", h.ApplyForm)
	seeker.POST("/jobs/:id/apply/", h.Apply)
	seeker.GET("/applications/track/", h.Track)

	// RECRUITER routes, scoped to owned postings
	recruiter.GET("/jobs/:id/applications/", h.ListForJob)
	recruiter.GET("/jobs/:id/applications/export/", h.Export)
	recruiter.Any("/applications/:id/status/", middleware.PostOnly(), h.UpdateStatus)
}

func (h *ApplicationHandler) activeJob(c *gin.Context) (*domain.JobPosting, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}
	job, err := h.jobUC.GetActiveJob(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return job, true
}

func (h *ApplicationHandler) ApplyForm(c *gin.Context) {
	job, ok := h.activeJob(c)
	if !ok {
		return
	}
	response.Form(c, http.StatusOK, "apply_job.html", domain.ApplicationInput{}, nil, gin.H{"Title": "Apply", "Job": job})
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	job, ok := h.activeJob(c)
	if !ok {
		return
	}
	extra := gin.H{"Title": "Apply", "Job": job}

	var input domain.ApplicationInput
	if !bindForm(c, &input, "apply_job.html", extra) {
		return
	}
	if _, err := h.appUC.ApplyToJob(c.Request.Context(), currentUser(c).ID, job.ID, input); err != nil {
		renderFormError(c, err, "apply_job.html", input, extra)
		return
	}
	response.Redirect(c, "/applications/track/")
}

func (h *ApplicationHandler) Track(c *gin.Context) {
	apps, err := h.appUC.GetMyApplications(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "applications_track.html", gin.H{"Title": "My applications", "Applications": apps})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, apps, err := h.appUC.ListByJobID(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "view_applications.html", gin.H{
		"Title":        "Applications",
		"Job":          job,
		"Applications": apps,
	})
}

func (h *ApplicationHandler) Export(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	export, err := h.appUC.ExportApplications(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, export.Data)
}

// UpdateStatus always lands back on the job's applications page; unknown
// statuses are dropped by the use case.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	jobID, err := h.appUC.UpdateApplicationStatus(c.Request.Context(), currentUser(c).ID, id, c.PostForm("status"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Redirect(c, "/jobs/"+strconv.FormatInt(jobID, 10)+"/applications/")
}
