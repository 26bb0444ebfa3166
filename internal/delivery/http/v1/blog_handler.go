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

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

func NewBlogHandler(public, protected *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	publicBlogs := public.Group("/blogs")
	{
		publicBlogs.GET("", handler.ListApproved)
		publicBlogs.GET("/:id", handler.Get)
	}

	employerBlogs := protected.Group("/employers/blogs")
	employerBlogs.Use(middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin))
	{
		employerBlogs.GET("", handler.ListMine)
		employerBlogs.POST("", handler.Create)
		employerBlogs.PUT("/:id", handler.Update)
		employerBlogs.DELETE("/:id", handler.Delete)
	}
}

type BlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Outline string `json:"outline"`
	Content string `json:"content" binding:"required"`
}

// ListApproved godoc
// @Summary      List published blog posts
// @Tags         blogs
// @Produce      json
// @Param        limit  query     int  false  "Max posts"
// @Success      200    {object}  response.Response
// @Router       /blogs [get]
func (h *BlogHandler) ListApproved(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	posts, err := h.blogUC.ListApproved(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Posts retrieved", posts)
}

// Get godoc
// @Summary      Get one blog post
// @Tags         blogs
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{id} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	post, err := h.blogUC.GetPost(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Post retrieved", post)
}

func (h *BlogHandler) ListMine(c *gin.Context) {
	posts, err := h.blogUC.ListByEmployer(c.Request.Context(), sessionUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Posts retrieved", posts)
}

// Create godoc
// @Summary      Create a blog post
// @Description  The post stays hidden from the public blog until an admin approves it.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        body  body      BlogRequest  true  "Blog post"
// @Success      201   {object}  response.Response
// @Router       /employers/blogs [post]
// @Security     BearerAuth
func (h *BlogHandler) Create(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	post := &domain.BlogPost{Title: req.Title, Outline: req.Outline, Content: req.Content}
	if err := h.blogUC.CreatePost(c.Request.Context(), sessionUserID(c), post); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Post created and awaiting approval", post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	post := &domain.BlogPost{ID: id, Title: req.Title, Outline: req.Outline, Content: req.Content}
	if err := h.blogUC.UpdatePost(c.Request.Context(), sessionUserID(c), post); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Post updated", post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.blogUC.DeletePost(c.Request.Context(), sessionUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Post deleted", nil)
}
