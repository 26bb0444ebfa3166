package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/middleware"
	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type ShortlistHandler struct {
	shortlistUC domain.ShortlistUsecase
	outreachUC  domain.OutreachUsecase
}

func NewShortlistHandler(protected *gin.RouterGroup, shortlistUC domain.ShortlistUsecase, outreachUC domain.OutreachUsecase) {
	handler := &ShortlistHandler{shortlistUC: shortlistUC, outreachUC: outreachUC}

	shortlist := protected.Group("/employers/shortlist")
	shortlist.Use(middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin))
	{
		shortlist.GET("", handler.List)
		shortlist.POST("", handler.Add)
		shortlist.GET("/export", handler.Export)
		shortlist.POST("/email", handler.SendEmail)
	}
}

type ShortlistRequest struct {
	CandidateID int64  `json:"candidate_id" binding:"required"`
	Position    string `json:"position"`
	PositionID  int64  `json:"position_id"`
}

type OutreachEmailRequest struct {
	To       string `json:"to" binding:"required,email"`
	Subject  string `json:"subject" binding:"required"`
	HTMLBody string `json:"html_body" binding:"required"`
}

// Add godoc
// @Summary      Shortlist a candidate
// @Tags         shortlist
// @Accept       json
// @Produce      json
// @Param        body  body      ShortlistRequest  true  "Candidate and position"
// @Success      201   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /employers/shortlist [post]
// @Security     BearerAuth
func (h *ShortlistHandler) Add(c *gin.Context) {
	var req ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.shortlistUC.ShortlistCandidate(c.Request.Context(), sessionUserID(c), req.CandidateID, req.Position, req.PositionID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate shortlisted", nil)
}

// List godoc
// @Summary      List the logged-in employer's shortlisted candidates
// @Tags         shortlist
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employers/shortlist [get]
// @Security     BearerAuth
func (h *ShortlistHandler) List(c *gin.Context) {
	entries, err := h.shortlistUC.GetShortlisted(c.Request.Context(), sessionUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Shortlist retrieved", entries)
}

// Export godoc
// @Summary      Download the shortlist as an xlsx workbook
// @Tags         shortlist
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /employers/shortlist/export [get]
// @Security     BearerAuth
func (h *ShortlistHandler) Export(c *gin.Context) {
	data, filename, err := h.shortlistUC.ExportShortlist(c.Request.Context(), sessionUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// SendEmail godoc
// @Summary      Send an outreach email to a shortlisted candidate
// @Tags         shortlist
// @Accept       json
// @Produce      json
// @Param        body  body      OutreachEmailRequest  true  "Email"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /employers/shortlist/email [post]
// @Security     BearerAuth
func (h *ShortlistHandler) SendEmail(c *gin.Context) {
	var req OutreachEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.outreachUC.SendEmail(c.Request.Context(), req.To, req.Subject, req.HTMLBody); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Email sent", nil)
}
