package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/middleware"
	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type TestHandler struct {
	testUC domain.TestUsecase
}

func NewTestHandler(protected *gin.RouterGroup, testUC domain.TestUsecase) {
	handler := &TestHandler{testUC: testUC}

	employerTests := protected.Group("/employers/jobs/:id/test")
	employerTests.Use(middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin))
	{
		employerTests.PUT("", handler.SaveJobTest)
	}

	candidateTests := protected.Group("")
	candidateTests.Use(middleware.RequireRole(domain.RoleCandidate))
	{
		candidateTests.GET("/jobs/:id/test", handler.GetJobTest)
		candidateTests.POST("/jobs/:id/test/submit", handler.SubmitJobTest)
		candidateTests.POST("/skill-tests/submit", handler.SubmitSkillTest)
	}
}

type SaveJobTestRequest struct {
	Questions []domain.TestQuestion `json:"questions" binding:"required"`
}

type SubmitAnswersRequest struct {
	Answers []domain.TestAnswer `json:"answers" binding:"required"`
}

type SubmitSkillTestRequest struct {
	Skill   string              `json:"skill" binding:"required"`
	Answers []domain.TestAnswer `json:"answers" binding:"required"`
}

// SaveJobTest godoc
// @Summary      Attach or replace the formal test on a job posting
// @Tags         tests
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Job ID"
// @Param        body  body      SaveJobTestRequest  true  "Test questions"
// @Success      200   {object}  response.Response
// @Success      201   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /employers/jobs/{id}/test [put]
// @Security     BearerAuth
func (h *TestHandler) SaveJobTest(c *gin.Context) {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req SaveJobTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.testUC.SaveJobTest(c.Request.Context(), sessionUserID(c), jobID, req.Questions)
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		response.Success(c, http.StatusCreated, "Test created", nil)
		return
	}
	response.Success(c, http.StatusOK, "Test updated", nil)
}

// GetJobTest godoc
// @Summary      Get the test questions for a job
// @Description  Returns 409 when the candidate has already attempted the test; the first attempt is final.
// @Tags         tests
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/test [get]
// @Security     BearerAuth
func (h *TestHandler) GetJobTest(c *gin.Context) {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	test, err := h.testUC.GetJobTest(c.Request.Context(), sessionUserID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	// Strip expected answers before handing questions to the candidate.
	questions := make([]domain.TestQuestion, len(test.Questions))
	for i, q := range test.Questions {
		questions[i] = domain.TestQuestion{Question: q.Question, Options: q.Options}
	}
	response.Success(c, http.StatusOK, "Test retrieved", gin.H{
		"job_id":    test.JobID,
		"skills":    test.Skills,
		"questions": questions,
	})
}

// SubmitJobTest godoc
// @Summary      Submit the one permitted attempt at a job's test
// @Tags         tests
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Job ID"
// @Param        body  body      SubmitAnswersRequest  true  "Answers"
// @Success      201   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/test/submit [post]
// @Security     BearerAuth
func (h *TestHandler) SubmitJobTest(c *gin.Context) {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.testUC.SubmitJobTest(c.Request.Context(), sessionUserID(c), jobID, req.Answers)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Test submitted", result)
}

// SubmitSkillTest godoc
// @Summary      Submit a skill self-assessment
// @Description  Scores the answers and replaces the candidate's previous result for that skill.
// @Tags         tests
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitSkillTestRequest  true  "Skill and answers"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /skill-tests/submit [post]
// @Security     BearerAuth
func (h *TestHandler) SubmitSkillTest(c *gin.Context) {
	var req SubmitSkillTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	result, err := h.testUC.SubmitSkillTest(c.Request.Context(), sessionUserID(c), req.Skill, req.Answers)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill test submitted", result)
}
