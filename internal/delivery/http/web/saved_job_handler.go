package web

import (
	"net/http"

	"go-jobboard/internal/delivery/http/middleware"
	"go-jobboard/internal/delivery/http/response"
	"go-jobboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedUC domain.SavedJobUsecase
}

func NewSavedJobHandler(seeker *gin.RouterGroup, savedUC domain.SavedJobUsecase) {
	h := &SavedJobHandler{savedUC: savedUC}

	seeker.Any("/jobs/:id/save/", middleware.PostOnly(), h.Save)
	seeker.GET("/saved-jobs/", h.List)
}

// Save is idempotent: saving the same job twice keeps one bookmark.
func (h *SavedJobHandler) Save(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.savedUC.SaveJob(c.Request.Context(), currentUser(c).ID, id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Redirect(c, "/saved-jobs/")
}

func (h *SavedJobHandler) List(c *gin.Context) {
	saved, err := h.savedUC.ListSavedJobs(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, "saved_jobs.html", gin.H{"Title": "Saved jobs", "SavedJobs": saved})
}
