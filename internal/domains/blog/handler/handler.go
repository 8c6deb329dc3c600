package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-api/internal/domains/blog/model"
	"blog-api/internal/domains/blog/service"
	"blog-api/internal/shared/response"
)

// =====================================================
// BLOG HANDLER
// =====================================================

type BlogHandler struct {
	blogService service.ServiceInterface
}

func NewBlogHandler(blogService service.ServiceInterface) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// RegisterRoutes binds the blog endpoints on r. The collection answers
// with and without a trailing slash.
func (h *BlogHandler) RegisterRoutes(r gin.IRouter) {
	blogs := r.Group("/blogs")
	{
		blogs.POST("", h.CreateBlog)
		blogs.POST("/", h.CreateBlog)
		blogs.GET("", h.ListBlogs)
		blogs.GET("/", h.ListBlogs)
		blogs.GET("/:id", h.GetBlog)
		blogs.PUT("/:id", h.UpdateBlog)
		blogs.DELETE("/:id", h.DeleteBlog)
	}
}

// =====================================================
// ENDPOINTS
// =====================================================

// CreateBlog creates a new blog
// POST /blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateBlogRequest
	if err := bindJSON(c, &req); err != nil {
		response.BadRequest(c, model.MsgInvalidBodyJSON)
		return
	}

	// Step 2: Call service (validates before touching the store)
	result, err := h.blogService.CreateBlog(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to create blog")
		return
	}

	// Step 3: Return success
	response.SuccessWithMessage(c, http.StatusCreated, "Blog created successfully", result)
}

// ListBlogs lists every blog
// GET /blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.ListBlogs(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to fetch blogs")
		return
	}

	response.List(c, blogs, len(blogs))
}

// GetBlog gets a blog by ID
// GET /blogs/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, err := h.blogService.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch blog")
		return
	}

	response.Success(c, http.StatusOK, blog)
}

// UpdateBlog updates some fields of a blog
// PUT /blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	// Step 1: Identifier format comes before the body
	id := c.Param("id")
	if !model.IsValidBlogID(id) {
		response.BadRequest(c, model.MsgInvalidBlogID)
		return
	}

	// Step 2: Bind request body
	var req model.UpdateBlogRequest
	if err := bindJSON(c, &req); err != nil {
		response.BadRequest(c, model.MsgInvalidBodyJSON)
		return
	}

	// Step 3: Call service
	modified, err := h.blogService.UpdateBlog(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update blog")
		return
	}

	response.Modified(c, "Blog updated successfully", modified)
}

// DeleteBlog deletes a blog
// DELETE /blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	deleted, err := h.blogService.DeleteBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to delete blog")
		return
	}

	response.Deleted(c, "Blog deleted successfully", deleted)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

// respondError maps a service error to its status. failure is the client
// message used for store errors, whose cause goes into details.
func (h *BlogHandler) respondError(c *gin.Context, err error, failure string) {
	statusCode, blogErr := mapBlogError(err)

	switch statusCode {
	case http.StatusBadRequest, http.StatusNotFound:
		response.ErrorResponse(c, statusCode, blogErr.Message)
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg(failure)

		details := err.Error()
		if blogErr != nil {
			details = blogErr.Cause()
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, failure, details)
	}
}

// bindJSON decodes the request body into dest. A missing body leaves dest
// zero so the field checks report what is missing.
func bindJSON(c *gin.Context, dest interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// mapBlogError maps a blog error to an HTTP status code
func mapBlogError(err error) (int, *model.BlogError) {
	var blogErr *model.BlogError
	if errors.As(err, &blogErr) {
		switch blogErr.Code {
		case model.ErrCodeBlogNotFound:
			return http.StatusNotFound, blogErr
		case model.ErrCodeValidation:
			return http.StatusBadRequest, blogErr
		default:
			return http.StatusInternalServerError, blogErr
		}
	}
	return http.StatusInternalServerError, nil
}
