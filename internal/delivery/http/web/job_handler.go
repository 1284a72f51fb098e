package web

import (
	"net/http"
	"strconv"

	"go-jobboard/internal/delivery/http/middleware"
	"go-jobboard/internal/delivery/http/response"
	"go-jobboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, recruiter *gin.RouterGroup, jobUC domain.JobUsecase) {
	h := &JobHandler{jobUC: jobUC}

	// PUBLIC routes, active postings only
	public.GET("/", h.Home)
	public.GET("/jobs/", h.List)
	public.GET("/search/jobs/", h.Search)
	public.GET("/jobs/:id/", h.Detail)

	// RECRUITER routes
	recruiter.GET("/recruiter/dashboard/", h.Dashboard)
	recruiter.GET("/jobs/create/", h.CreateForm)
	recruiter.POST("/jobs/create/", h.Create)
	recruiter.GET("/jobs/manage/", h.Manage)
	recruiter.GET("/jobs/:id/edit/", h.EditForm)
	recruiter.POST("/jobs/:id/edit/", h.Edit)
	recruiter.Any("/jobs/:id/delete/", middleware.PostOnly(), h.Delete)
}

func (h *JobHandler) Home(c *gin.Context) {
	h.listActive(c, "Latest jobs")
}

func (h *JobHandler) List(c *gin.Context) {
	h.listActive(c, "All jobs")
}

func (h *JobHandler) listActive(c *gin.Context, heading string) {
	jobs, err := h.jobUC.ListActiveJobs(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "home.html", gin.H{"Heading": heading, "Jobs": jobs})
}

func (h *JobHandler) Search(c *gin.Context) {
	search := domain.JobSearch{Query: c.Query("q"), Location: c.Query("location")}
	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "home.html", gin.H{
		"Title":    "Search",
		"Heading":  "Search results",
		"Jobs":     jobs,
		"Query":    search.Query,
		"Location": search.Location,
	})
}

func (h *JobHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetActiveJob(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "job_detail.html", gin.H{"Title": job.Title, "Job": job})
}

func (h *JobHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.jobUC.GetDashboard(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "recruiter_dashboard.html", gin.H{"Title": "Dashboard", "Dashboard": dashboard})
}

func createFormData() gin.H {
	return gin.H{"Title": "Post a job", "Heading": "Post a job", "Action": "/jobs/create/", "Submit": "Create"}
}

func (h *JobHandler) CreateForm(c *gin.Context) {
	response.Form(c, http.StatusOK, "job_form.html", domain.JobPostingInput{IsActive: true}, nil, createFormData())
}

func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobPostingInput
	if !bindForm(c, &input, "job_form.html", createFormData()) {
		return
	}
	if _, err := h.jobUC.CreateJob(c.Request.Context(), currentUser(c).ID, input); err != nil {
		renderFormError(c, err, "job_form.html", input, createFormData())
		return
	}
	response.Redirect(c, "/recruiter/dashboard/")
}

func (h *JobHandler) Manage(c *gin.Context) {
	jobs, err := h.jobUC.ListJobsByRecruiter(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "manage_jobs.html", gin.H{"Title": "Manage jobs", "Jobs": jobs})
}

func editFormData(id int64) gin.H {
	return gin.H{
		"Title":   "Edit job",
		"Heading": "Edit job",
		"Action":  "/jobs/" + strconv.FormatInt(id, 10) + "/edit/",
		"Submit":  "Save changes",
	}
}

func (h *JobHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetOwnedJob(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Form(c, http.StatusOK, "job_form.html", domain.InputFromJob(job), nil, editFormData(id))
}

func (h *JobHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input domain.JobPostingInput
	if !bindForm(c, &input, "job_form.html", editFormData(id)) {
		return
	}
	if _, err := h.jobUC.UpdateJob(c.Request.Context(), currentUser(c).ID, id, input); err != nil {
		renderFormError(c, err, "job_form.html", input, editFormData(id))
		return
	}
	response.Redirect(c, "/jobs/manage/")
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.jobUC.DeleteJob(c.Request.Context(), currentUser(c).ID, id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Redirect(c, "/jobs/manage/")
}
