package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobsclub-backend/internal/delivery/http/response"
	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/candidates/register", handler.RegisterCandidate)
		auth.POST("/candidates/login", loginLimiter, handler.LoginCandidate)
		auth.POST("/employers/register", handler.RegisterEmployer)
		auth.POST("/employers/login", loginLimiter, handler.LoginEmployer)
		auth.POST("/admin/login", loginLimiter, handler.LoginAdmin)
		auth.POST("/logout", handler.Logout)
	}
}

type RegisterCandidateRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
}

type RegisterEmployerRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterCandidate godoc
// @Summary      Register a candidate account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterCandidateRequest  true  "Registration payload"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/candidates/register [post]
func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate := &domain.Candidate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if req.Phone != "" {
		candidate.Phone = &req.Phone
	}

	if err := h.authUC.RegisterCandidate(c.Request.Context(), candidate, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created. You can now log in.", gin.H{"id": candidate.ID})
}

// RegisterEmployer godoc
// @Summary      Register an employer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterEmployerRequest  true  "Registration payload"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/employers/register [post]
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employer := &domain.Employer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
	}
	if req.Phone != "" {
		employer.Phone = &req.Phone
	}

	if err := h.authUC.RegisterEmployer(c.Request.Context(), employer, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created. You can now log in.", gin.H{"id": employer.ID})
}

// LoginCandidate godoc
// @Summary      Log in as a candidate
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/candidates/login [post]
func (h *AuthHandler) LoginCandidate(c *gin.Context) {
	h.login(c, h.authUC.LoginCandidate)
}

// LoginEmployer godoc
// @Summary      Log in as an employer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /auth/employers/login [post]
func (h *AuthHandler) LoginEmployer(c *gin.Context) {
	h.login(c, h.authUC.LoginEmployer)
}

// LoginAdmin godoc
// @Summary      Log in with the configured admin credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, h.authUC.LoginAdmin)
}

func (h *AuthHandler) login(c *gin.Context, fn func(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	session, err := fn(c.Request.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		c.Error(err)
		return
	}

	// Cookie for browser flows; the token in the body serves API clients.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", session.Token, 24*3600, "/", "", false, true)
	response.Success(c, http.StatusOK, "Login successful", session)
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}
