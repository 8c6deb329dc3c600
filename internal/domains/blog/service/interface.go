package service

import (
	"context"

	"blog-api/internal/domains/blog/model"
)

// =====================================================
// BLOG SERVICE INTERFACE
// =====================================================

// ServiceInterface validates blog requests and drives the repository.
// Identifiers are the raw path values; they are checked before the store
// is consulted.
type ServiceInterface interface {
	// CreateBlog validates and inserts a new blog
	CreateBlog(ctx context.Context, req model.CreateBlogRequest) (*model.CreateBlogResponse, error)

	// ListBlogs returns every blog
	ListBlogs(ctx context.Context) ([]*model.Blog, error)

	// GetBlog gets a blog by ID
	GetBlog(ctx context.Context, id string) (*model.Blog, error)

	// UpdateBlog applies a partial update, returns the modified count
	UpdateBlog(ctx context.Context, id string, req model.UpdateBlogRequest) (int64, error)

	// DeleteBlog deletes a blog, returns the deleted count
	DeleteBlog(ctx context.Context, id string) (int64, error)
}
