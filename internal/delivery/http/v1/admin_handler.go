package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/middleware"
	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/jobs", handler.ListJobs)
		admin.PUT("/jobs/:id/approval", handler.SetJobApproval)
		admin.PUT("/blogs/:id/approval", handler.SetBlogApproval)
	}
}

type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ListJobs godoc
// @Summary      List all job postings for review
// @Tags         admin
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *AdminHandler) ListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	jobs, total, err := h.adminUC.ListPendingJobs(c.Request.Context(), page, pageSize)
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

// SetJobApproval godoc
// @Summary      Approve or reject a job posting
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Job ID"
// @Param        body  body      ApprovalRequest  true  "Approval state"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/jobs/{id}/approval [put]
// @Security     BearerAuth
func (h *AdminHandler) SetJobApproval(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.adminUC.SetJobApproval(c.Request.Context(), id, *req.Approved); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job approval updated", nil)
}

// SetBlogApproval godoc
// @Summary      Approve or reject a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Post ID"
// @Param        body  body      ApprovalRequest  true  "Approval state"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/blogs/{id}/approval [put]
// @Security     BearerAuth
func (h *AdminHandler) SetBlogApproval(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.adminUC.SetBlogApproval(c.Request.Context(), id, *req.Approved); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blog approval updated", nil)
}
