package service

import (
	"context"

	"blog-api/internal/domains/blog/model"
	"blog-api/internal/domains/blog/repository"
)

type blogService struct {
	repo repository.BlogRepository
}

func NewBlogService(repo repository.BlogRepository) ServiceInterface {
	return &blogService{repo: repo}
}

// =====================================================
// CREATE
// =====================================================

func (s *blogService) CreateBlog(ctx context.Context, req model.CreateBlogRequest) (*model.CreateBlogResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Insert
	id, err := s.repo.Create(ctx, req.ToBlog())
	if err != nil {
		return nil, err
	}

	return &model.CreateBlogResponse{ID: id}, nil
}

// =====================================================
// READ
// =====================================================

func (s *blogService) ListBlogs(ctx context.Context) ([]*model.Blog, error) {
	return s.repo.List(ctx)
}

func (s *blogService) GetBlog(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := model.ParseBlogID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

// =====================================================
// UPDATE
// =====================================================

func (s *blogService) UpdateBlog(ctx context.Context, id string, req model.UpdateBlogRequest) (int64, error) {
	// Step 1: Identifier first, then fields
	oid, err := model.ParseBlogID(id)
	if err != nil {
		return 0, err
	}

	// Step 2: Validate request
	if err := req.Validate(); err != nil {
		return 0, err
	}

	// Step 3: Apply
	return s.repo.Update(ctx, oid, req.ToUpdate())
}

// =====================================================
// DELETE
// =====================================================

func (s *blogService) DeleteBlog(ctx context.Context, id string) (int64, error) {
	oid, err := model.ParseBlogID(id)
	if err != nil {
		return 0, err
	}
	return s.repo.Delete(ctx, oid)
}
