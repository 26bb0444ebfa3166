package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/middleware"
	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
)

type MatchingHandler struct {
	matchingUC domain.MatchingUsecase
}

func NewMatchingHandler(protected *gin.RouterGroup, matchingUC domain.MatchingUsecase) {
	handler := &MatchingHandler{matchingUC: matchingUC}

	badges := protected.Group("/candidates/me/badges")
	badges.Use(middleware.RequireRole(domain.RoleCandidate))
	{
		badges.GET("", handler.MyBadges)
	}

	matcher := protected.Group("/employers/jobs/:id/matches")
	matcher.Use(middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin))
	{
		matcher.GET("", handler.MatchesForJob)
	}
}

// MyBadges godoc
// @Summary      Score the logged-in candidate's skills as badges
// @Tags         matching
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates/me/badges [get]
// @Security     BearerAuth
func (h *MatchingHandler) MyBadges(c *gin.Context) {
	badges, err := h.matchingUC.ComputeSkillBadges(c.Request.Context(), sessionUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill badges computed", badges)
}

// MatchesForJob godoc
// @Summary      Rank candidates for one job posting
// @Description  Returns two groups: candidates who took the job's test, ranked by score, and candidates whose skills overlap the job's requirements, ranked by overlap.
// @Tags         matching
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/jobs/{id}/matches [get]
// @Security     BearerAuth
func (h *MatchingHandler) MatchesForJob(c *gin.Context) {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	result, err := h.matchingUC.MatchCandidatesForJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates matched", result)
}
