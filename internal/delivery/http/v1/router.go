package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-jobsclub-backend/config"
	"go-jobsclub-backend/internal/delivery/http/middleware"
	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	CandidateUC  domain.CandidateUsecase
	JobUC        domain.JobUsecase
	MatchingUC   domain.MatchingUsecase
	TestUC       domain.TestUsecase
	ShortlistUC  domain.ShortlistUsecase
	BlogUC       domain.BlogUsecase
	GenerationUC domain.GenerationUsecase
	AdminUC      domain.AdminUsecase
	OutreachUC   domain.OutreachUsecase
	Tokens       *auth.TokenManager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}))
	loginLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:      deps.Config.RateLimitLoginThreshold,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
	})

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewAuthHandler(v1, deps.AuthUC, loginLimiter)
	NewHomeHandler(v1, deps.JobUC, deps.BlogUC, deps.CandidateUC, deps.MatchingUC)
	NewJobHandler(v1, protected, deps.JobUC)
	NewBlogHandler(v1, protected, deps.BlogUC)
	NewCandidateHandler(protected, deps.CandidateUC)
	NewMatchingHandler(protected, deps.MatchingUC)
	NewTestHandler(protected, deps.TestUC)
	NewShortlistHandler(protected, deps.ShortlistUC, deps.OutreachUC)
	NewGenerationHandler(protected, deps.GenerationUC, deps.ShortlistUC)
	NewAdminHandler(protected, deps.AdminUC)

	return r
}
