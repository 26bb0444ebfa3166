package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/middleware"
	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public job board: approved postings only.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	employerJobs := protected.Group("/employers/jobs")
	employerJobs.Use(middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin))
	{
		employerJobs.GET("", handler.ListByEmployer)
		employerJobs.POST("", handler.Create)
		employerJobs.PUT("/:id", handler.Update)
		employerJobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	JobTitle            string `json:"job_title" binding:"required"`
	Location            string `json:"location"`
	Company             string `json:"company"`
	EmploymentType      string `json:"employment_type"`
	ExperienceLevel     string `json:"experience_level"`
	ReportsTo           string `json:"reports_to"`
	SalaryRange         string `json:"salary_range"`
	ApplicationDeadline string `json:"application_deadline"`
	Skills              string `json:"skills" binding:"required"`
	Details             string `json:"details"`
}

func (r *JobRequest) toDomain() (*domain.JobPosting, error) {
	job := &domain.JobPosting{
		JobTitle:        r.JobTitle,
		Location:        r.Location,
		Company:         r.Company,
		EmploymentType:  r.EmploymentType,
		ExperienceLevel: r.ExperienceLevel,
		ReportsTo:       r.ReportsTo,
		SalaryRange:     r.SalaryRange,
		Skills:          r.Skills,
		Details:         r.Details,
	}
	if r.ApplicationDeadline != "" {
		deadline, err := time.Parse("2006-01-02", r.ApplicationDeadline)
		if err != nil {
			return nil, apperror.BadRequest("application_deadline must be YYYY-MM-DD")
		}
		job.ApplicationDeadline = deadline
	}
	return job, nil
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid " + name)
	}
	return id, nil
}

// List godoc
// @Summary      List approved job postings
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListApprovedJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
	})
}

// GetDetails godoc
// @Summary      Get one job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// ListByEmployer godoc
// @Summary      List the logged-in employer's job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	jobs, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), sessionUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// Create godoc
// @Summary      Create a job posting
// @Description  The posting stays hidden from the public board until an admin approves it.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobRequest  true  "Job posting"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /employers/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.jobUC.CreateJob(c.Request.Context(), sessionUserID(c), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created and awaiting approval", job)
}

// Update godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Job ID"
// @Param        body  body      JobRequest  true  "Job posting"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /employers/jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}
	job.ID = id
	if err := h.jobUC.UpdateJob(c.Request.Context(), sessionUserID(c), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employers/jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.jobUC.DeleteJob(c.Request.Context(), sessionUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
