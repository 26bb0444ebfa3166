package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
)

const (
	homeFeedJobs  = 6
	homeFeedBlogs = 5
)

// HomeHandler serves the unauthenticated site surface: the landing feed and
// public candidate profiles.
type HomeHandler struct {
	jobUC       domain.JobUsecase
	blogUC      domain.BlogUsecase
	candidateUC domain.CandidateUsecase
	matchingUC  domain.MatchingUsecase
}

func NewHomeHandler(public *gin.RouterGroup, jobUC domain.JobUsecase, blogUC domain.BlogUsecase, candidateUC domain.CandidateUsecase, matchingUC domain.MatchingUsecase) {
	handler := &HomeHandler{jobUC: jobUC, blogUC: blogUC, candidateUC: candidateUC, matchingUC: matchingUC}

	public.GET("/home", handler.Feed)
	public.GET("/candidates/:id/profile", handler.CandidateProfile)
}

// Feed godoc
// @Summary      Latest approved jobs and blog posts for the landing page
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /home [get]
func (h *HomeHandler) Feed(c *gin.Context) {
	jobs, _, err := h.jobUC.ListApprovedJobs(c.Request.Context(), 1, homeFeedJobs)
	if err != nil {
		c.Error(err)
		return
	}
	blogs, err := h.blogUC.ListApproved(c.Request.Context(), homeFeedBlogs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Home feed", gin.H{
		"job_posts":  jobs,
		"blog_posts": blogs,
	})
}

// PublicCandidateProfile is the read-only view anyone can see: display
// fields, the decoded resume and scored skill badges. Email and phone stay
// private.
type PublicCandidateProfile struct {
	ID     int64                 `json:"id"`
	Name   string                `json:"name"`
	Skills []domain.SkillBadge   `json:"skills"`
	Resume domain.ResumeDocument `json:"resume"`
}

// CandidateProfile godoc
// @Summary      Public candidate profile with resume and skill badges
// @Tags         public
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/profile [get]
func (h *HomeHandler) CandidateProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	badges, err := h.matchingUC.ComputeSkillBadges(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", PublicCandidateProfile{
		ID:     candidate.ID,
		Name:   candidate.FullName(),
		Skills: badges,
		Resume: candidate.ResumeDocument(),
	})
}
