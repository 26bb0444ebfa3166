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

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	me := protected.Group("/candidates/me")
	me.Use(middleware.RequireRole(domain.RoleCandidate))
	{
		me.GET("", handler.GetProfile)
		me.PUT("", handler.UpdateProfile)
		me.PUT("/password", handler.ChangePassword)
		me.GET("/resume", handler.GetResume)
		me.PUT("/resume", handler.SaveResume)
	}

	// Employers browse the candidate pool.
	search := protected.Group("/candidates")
	search.Use(middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin))
	{
		search.GET("/search", handler.Search)
		search.GET("/:id/resume", handler.GetCandidateResume)
	}
}

// sessionUserID reads the authenticated user's id set by the auth middleware.
func sessionUserID(c *gin.Context) int64 {
	id, _ := c.Get(string(domain.KeyUserID))
	v, _ := id.(int64)
	return v
}

type UpdateProfileRequest struct {
	FirstName     string `json:"firstname" binding:"required"`
	LastName      string `json:"lastname" binding:"required"`
	Phone         string `json:"phone"`
	Skills        string `json:"skills"`
	SelectedTheme string `json:"selected_theme"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// GetProfile godoc
// @Summary      Get the logged-in candidate's profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	candidate, err := h.candidateUC.GetProfile(c.Request.Context(), sessionUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", candidate)
}

// UpdateProfile godoc
// @Summary      Update the logged-in candidate's profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate := &domain.Candidate{
		ID:            sessionUserID(c),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Skills:        req.Skills,
		SelectedTheme: req.SelectedTheme,
	}
	if req.Phone != "" {
		candidate.Phone = &req.Phone
	}

	if err := h.candidateUC.UpdateProfile(c.Request.Context(), candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", nil)
}

// ChangePassword godoc
// @Summary      Change the logged-in candidate's password
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      ChangePasswordRequest  true  "Old and new password"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /candidates/me/password [put]
// @Security     BearerAuth
func (h *CandidateHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.candidateUC.ChangePassword(c.Request.Context(), sessionUserID(c), req.OldPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed", nil)
}

// GetResume godoc
// @Summary      Get the logged-in candidate's resume
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates/me/resume [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetResume(c *gin.Context) {
	doc, err := h.candidateUC.GetResume(c.Request.Context(), sessionUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume retrieved", doc)
}

// SaveResume godoc
// @Summary      Save the logged-in candidate's resume
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ResumeDocument  true  "Resume document"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /candidates/me/resume [put]
// @Security     BearerAuth
func (h *CandidateHandler) SaveResume(c *gin.Context) {
	var doc domain.ResumeDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.candidateUC.SaveResume(c.Request.Context(), sessionUserID(c), doc); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume saved", nil)
}

// Search godoc
// @Summary      Search candidates by name, skill or education
// @Tags         candidates
// @Produce      json
// @Param        q    query     string  true  "Search query"
// @Success      200  {object}  response.Response
// @Router       /candidates/search [get]
// @Security     BearerAuth
func (h *CandidateHandler) Search(c *gin.Context) {
	hits, err := h.candidateUC.SearchCandidates(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search results", hits)
}

// GetCandidateResume godoc
// @Summary      View a candidate's resume
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/resume [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCandidateResume(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}
	doc, err := h.candidateUC.GetResume(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume retrieved", doc)
}
