package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/middleware"
	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type GenerationHandler struct {
	generationUC domain.GenerationUsecase
	shortlistUC  domain.ShortlistUsecase
}

func NewGenerationHandler(protected *gin.RouterGroup, generationUC domain.GenerationUsecase, shortlistUC domain.ShortlistUsecase) {
	handler := &GenerationHandler{generationUC: generationUC, shortlistUC: shortlistUC}

	candidateAI := protected.Group("/ai")
	candidateAI.Use(middleware.RequireRole(domain.RoleCandidate))
	{
		candidateAI.POST("/resume", handler.GenerateResume)
		candidateAI.POST("/skill-test", handler.GenerateSkillTest)
	}

	employerAI := protected.Group("/employers/ai")
	employerAI.Use(middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin))
	{
		employerAI.POST("/job-post", handler.GenerateJobPost)
		employerAI.POST("/blog-post", handler.GenerateBlogPost)
		employerAI.POST("/job-test", handler.GenerateJobTest)
		employerAI.POST("/outreach-email", handler.GenerateOutreachEmail)
		employerAI.POST("/contract", handler.GenerateContract)
		employerAI.POST("/recommend", handler.RecommendCandidates)
	}
}

type GenerateFromTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type GenerateBlogRequest struct {
	Title string `json:"title"`
}

type GenerateSkillTestRequest struct {
	Skill string `json:"skill" binding:"required"`
}

type GenerateJobTestRequest struct {
	JobID        int64 `json:"job_id" binding:"required"`
	NumQuestions int   `json:"num_questions"`
}

type GenerateOutreachRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateResume godoc
// @Summary      Rewrite the submitted resume draft with AI
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ResumeDocument  true  "Resume draft"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /ai/resume [post]
// @Security     BearerAuth
func (h *GenerationHandler) GenerateResume(c *gin.Context) {
	var draft domain.ResumeDocument
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	doc, err := h.generationUC.GenerateResume(c.Request.Context(), sessionUserID(c), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume generated", doc)
}

// GenerateSkillTest godoc
// @Summary      Generate a 20-question self-assessment for a skill
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateSkillTestRequest  true  "Skill"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /ai/skill-test [post]
// @Security     BearerAuth
func (h *GenerationHandler) GenerateSkillTest(c *gin.Context) {
	var req GenerateSkillTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	questions, err := h.generationUC.GenerateSkillTest(c.Request.Context(), req.Skill)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill test generated", gin.H{"skill": req.Skill, "questions": questions})
}

// GenerateJobPost godoc
// @Summary      Draft a full job post from rough notes
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateFromTextRequest  true  "Rough notes"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /employers/ai/job-post [post]
// @Security     BearerAuth
func (h *GenerationHandler) GenerateJobPost(c *gin.Context) {
	var req GenerateFromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	post, err := h.generationUC.GenerateJobPost(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post generated", gin.H{"content": post})
}

// GenerateBlogPost godoc
// @Summary      Draft a blog post, optionally from a given title
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateBlogRequest  true  "Optional title"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /employers/ai/blog-post [post]
// @Security     BearerAuth
func (h *GenerationHandler) GenerateBlogPost(c *gin.Context) {
	var req GenerateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	blog, err := h.generationUC.GenerateBlogPost(c.Request.Context(), req.Title)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blog post generated", blog)
}

// GenerateJobTest godoc
// @Summary      Generate test questions covering a job's required skills
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateJobTestRequest  true  "Job and question count"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /employers/ai/job-test [post]
// @Security     BearerAuth
func (h *GenerationHandler) GenerateJobTest(c *gin.Context) {
	var req GenerateJobTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	questions, err := h.generationUC.GenerateJobTest(c.Request.Context(), req.JobID, req.NumQuestions)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job test generated", gin.H{"job_id": req.JobID, "questions": questions})
}

// GenerateOutreachEmail godoc
// @Summary      Draft an outreach email to the employer's shortlist
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateOutreachRequest  true  "Drafting instructions"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /employers/ai/outreach-email [post]
// @Security     BearerAuth
func (h *GenerationHandler) GenerateOutreachEmail(c *gin.Context) {
	var req GenerateOutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employerID := sessionUserID(c)
	entries, err := h.shortlistUC.GetShortlisted(c.Request.Context(), employerID)
	if err != nil {
		c.Error(err)
		return
	}

	email, err := h.generationUC.GenerateOutreachEmail(c.Request.Context(), employerID, req.Prompt, entries)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Email drafted", email)
}

// GenerateContract godoc
// @Summary      Draft a contract for the employer's shortlisted candidates
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateOutreachRequest  true  "Drafting instructions"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /employers/ai/contract [post]
// @Security     BearerAuth
func (h *GenerationHandler) GenerateContract(c *gin.Context) {
	var req GenerateOutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employerID := sessionUserID(c)
	entries, err := h.shortlistUC.GetShortlisted(c.Request.Context(), employerID)
	if err != nil {
		c.Error(err)
		return
	}

	text, err := h.generationUC.GenerateContract(c.Request.Context(), employerID, req.Prompt, entries)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contract drafted", gin.H{"content": text})
}

// RecommendCandidates godoc
// @Summary      AI-pick the candidates best suited to a job description
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateFromTextRequest  true  "Job description"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /employers/ai/recommend [post]
// @Security     BearerAuth
func (h *GenerationHandler) RecommendCandidates(c *gin.Context) {
	var req GenerateFromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	hits, err := h.generationUC.RecommendCandidates(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates recommended", hits)
}
