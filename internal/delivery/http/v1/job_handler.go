package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, recruiter *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/search", handler.Search)
		jobs.GET("/:id", handler.GetDetails)
	}

	// Mutations are recruiter-only; the role guard is composed on the group.
	recruiterJobs := recruiter.Group("/jobs")
	{
		recruiterJobs.POST("", handler.Create)
		recruiterJobs.PUT("/:id", handler.Update)
		recruiterJobs.DELETE("/:id", handler.Delete)
		recruiterJobs.PATCH("/:id/toggle-active", handler.ToggleActive)
		recruiterJobs.GET("/mine/active-count", handler.ActiveCount)
	}
}

type CreateJobRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	CompanyName      string   `json:"company_name" binding:"required"`
	Location         string   `json:"location"`
	Category         string   `json:"category"`
	EmploymentType   string   `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	Salary           float64  `json:"salary" binding:"gte=0"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

type UpdateJobRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	CompanyName      *string  `json:"company_name"`
	Location         *string  `json:"location"`
	Category         *string  `json:"category"`
	EmploymentType   *string  `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	Salary           *float64 `json:"salary" binding:"omitempty,gte=0"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Create a job owned by the authenticated recruiter
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	recruiterID := c.GetString(string(domain.KeyUserID))

	job := &domain.Job{
		Title:            req.Title,
		Description:      req.Description,
		CompanyName:      req.CompanyName,
		Location:         req.Location,
		Category:         req.Category,
		EmploymentType:   req.EmploymentType,
		Salary:           req.Salary,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), recruiterID, job); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, job)
}

// List godoc
// @Summary      List jobs
// @Description  Paged job list; filter params switch to filtered queries
// @Tags         jobs
// @Produce      json
// @Param        page          query  int     false  "Page number"
// @Param        page_size     query  int     false  "Page size"
// @Param        category      query  string  false  "Exact category"
// @Param        location      query  string  false  "Location fragment"
// @Param        company_name  query  string  false  "Company name fragment"
// @Param        min_salary    query  number  false  "Minimum salary (inclusive)"
// @Param        max_salary    query  number  false  "Maximum salary (inclusive)"
// @Param        recruiter_id  query  string  false  "Owning recruiter"
// @Param        is_active     query  bool    false  "Active flag"
// @Success      200  {object}  map[string]interface{}
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)

	filter, filtered, err := jobFilterFromQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	var jobs []domain.Job
	var total int64
	if filtered {
		jobs, total, err = h.jobUC.FilterJobs(c.Request.Context(), filter, page, pageSize)
	} else {
		jobs, total, err = h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, pagedBody("jobs", jobs, total, page, pageSize))
}

// Search godoc
// @Summary      Keyword search over active jobs
// @Description  Case-insensitive substring match on title, description, or company name
// @Tags         jobs
// @Produce      json
// @Param        keyword    query  string  true   "Search keyword"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /jobs/search [get]
// @Security     BearerAuth
func (h *JobHandler) Search(c *gin.Context) {
	page, pageSize := pageParams(c)
	keyword := c.Query("keyword")

	jobs, total, err := h.jobUC.SearchJobs(c.Request.Context(), keyword, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, pagedBody("jobs", jobs, total, page, pageSize))
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, job)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Merge the provided fields into the existing job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int               true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Job JSON"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, domain.JobUpdate{
		Title:            req.Title,
		Description:      req.Description,
		CompanyName:      req.CompanyName,
		Location:         req.Location,
		Category:         req.Category,
		EmploymentType:   req.EmploymentType,
		Salary:           req.Salary,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	deleted, err := h.jobUC.DeleteJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"deleted": deleted})
}

// ToggleActive flips the posting's active flag and returns the updated job.
func (h *JobHandler) ToggleActive(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.ToggleJobActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, job)
}

// ActiveCount returns the number of active postings owned by the caller.
func (h *JobHandler) ActiveCount(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))

	count, err := h.jobUC.CountActiveByRecruiter(c.Request.Context(), recruiterID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"count": count})
}

func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}

func pagedBody(key string, items interface{}, total int64, page, pageSize int) gin.H {
	return gin.H{
		key:         items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	}
}

func jobFilterFromQuery(c *gin.Context) (domain.JobFilter, bool, error) {
	var filter domain.JobFilter
	filtered := false

	if v := c.Query("category"); v != "" {
		filter.Category = v
		filtered = true
	}
	if v := c.Query("location"); v != "" {
		filter.Location = v
		filtered = true
	}
	if v := c.Query("company_name"); v != "" {
		filter.CompanyName = v
		filtered = true
	}
	if v := c.Query("min_salary"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, false, apperror.BadRequest("Invalid min_salary")
		}
		filter.MinSalary = &min
		filtered = true
	}
	if v := c.Query("max_salary"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, false, apperror.BadRequest("Invalid max_salary")
		}
		filter.MaxSalary = &max
		filtered = true
	}
	if v := c.Query("recruiter_id"); v != "" {
		filter.RecruiterID = v
		filtered = true
	}
	if v := c.Query("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return filter, false, apperror.BadRequest("Invalid is_active")
		}
		filter.IsActive = &active
		filtered = true
	}

	return filter, filtered, nil
}
