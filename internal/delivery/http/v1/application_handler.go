package v1

import (
	"net/http"
	"strings"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, recruiter *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		apps.POST("", handler.Apply)
		apps.GET("/mine", handler.ListMine)
		apps.GET("/mine/count", handler.CountMine)
		apps.GET("/:id", handler.Get)
	}

	// Review routes are for recruiters and admins.
	review := recruiter.Group("/applications")
	{
		review.PATCH("/:id/status", handler.UpdateStatus)
		review.GET("/by-status", handler.ListByStatus)
		review.GET("/by-date-range", handler.ListByDateRange)
		review.GET("/by-candidate/:userId", handler.ListByCandidate)
	}
	recruiter.GET("/jobs/:id/applications", handler.ListByJob)
	recruiter.GET("/jobs/:id/applications/count", handler.CountByJob)
}

type ApplyRequest struct {
	JobID       int64  `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url"`
}

type UpdateStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	ReviewNotes    string `json:"review_notes"`
	InterviewNotes string `json:"interview_notes"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application for the authenticated candidate; duplicate applications are rejected
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201          {object}  domain.JobApplication
// @Failure      400          {object}  response.ErrorBody
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	candidateID := c.GetString(string(domain.KeyUserID))

	app, err := h.applicationUC.Apply(c.Request.Context(), candidateID, req.JobID, req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, app)
}

// Get godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  domain.JobApplication
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, app)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Move the application along the review pipeline; backward transitions are rejected
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "Status JSON"
// @Success      200     {object}  domain.JobApplication
// @Failure      400     {object}  response.ErrorBody
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), id, domain.StatusUpdate{
		Status:         req.Status,
		ReviewNotes:    req.ReviewNotes,
		InterviewNotes: req.InterviewNotes,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, app)
}

// ListMine godoc
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /applications/mine [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	candidateID := c.GetString(string(domain.KeyUserID))

	apps, total, err := h.applicationUC.ListByCandidate(c.Request.Context(), candidateID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, pagedBody("applications", apps, total, page, pageSize))
}

// ListByCandidate godoc
// @Summary      List a candidate's applications
// @Description  Recruiter and admin view of every application a candidate has submitted
// @Tags         applications
// @Produce      json
// @Param        userId     path   string  true   "Candidate user ID"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /applications/by-candidate/{userId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByCandidate(c *gin.Context) {
	page, pageSize := pageParams(c)

	apps, total, err := h.applicationUC.ListByCandidate(c.Request.Context(), c.Param("userId"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, pagedBody("applications", apps, total, page, pageSize))
}

// CountMine returns the caller's total number of applications.
func (h *ApplicationHandler) CountMine(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	count, err := h.applicationUC.CountByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"count": count})
}

// ListByJob godoc
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Param        id         path   int  true   "Job ID"
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}
	page, pageSize := pageParams(c)

	apps, total, err := h.applicationUC.ListByJob(c.Request.Context(), jobID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, pagedBody("applications", apps, total, page, pageSize))
}

// CountByJob returns application counts for a job, optionally per status.
func (h *ApplicationHandler) CountByJob(c *gin.Context) {
	jobID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var count int64
	if status := c.Query("status"); status != "" {
		count, err = h.applicationUC.CountByJobAndStatus(c.Request.Context(), jobID, status)
	} else {
		count, err = h.applicationUC.CountByJob(c.Request.Context(), jobID)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"count": count})
}

// ListByStatus godoc
// @Summary      List applications by status
// @Tags         applications
// @Produce      json
// @Param        statuses   query  string  true   "Comma-separated statuses"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /applications/by-status [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByStatus(c *gin.Context) {
	raw := c.Query("statuses")
	if raw == "" {
		c.Error(apperror.BadRequest("At least one status is required"))
		return
	}

	var statuses []string
	for _, status := range strings.Split(raw, ",") {
		if status = strings.TrimSpace(status); status != "" {
			statuses = append(statuses, status)
		}
	}

	page, pageSize := pageParams(c)

	apps, total, err := h.applicationUC.ListByStatus(c.Request.Context(), statuses, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, pagedBody("applications", apps, total, page, pageSize))
}

// ListByDateRange godoc
// @Summary      List applications submitted in a date range
// @Tags         applications
// @Produce      json
// @Param        from  query  string  true  "Range start (RFC 3339)"
// @Param        to    query  string  true  "Range end (RFC 3339)"
// @Success      200  {array}  domain.JobApplication
// @Router       /applications/by-date-range [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByDateRange(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid from date, expected RFC 3339"))
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid to date, expected RFC 3339"))
		return
	}

	apps, err := h.applicationUC.ListByDateRange(c.Request.Context(), from, to)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, apps)
}
