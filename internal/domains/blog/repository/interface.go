package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/internal/domains/blog/model"
)

// =====================================================
// BLOG REPOSITORY INTERFACE
// =====================================================

// BlogRepository is the resource store of the "blogs" collection.
//
// Every failure is a *model.BlogError: not found is ErrCodeBlogNotFound,
// anything coming from the driver is ErrCodeStore.
type BlogRepository interface {
	// Create inserts blog, stamps its timestamps and returns the generated ID.
	Create(ctx context.Context, blog *model.Blog) (primitive.ObjectID, error)

	// List returns every blog in natural order.
	List(ctx context.Context) ([]*model.Blog, error)

	// GetByID gets a blog by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error)

	// Update merges the non-nil fields of update and resets updatedAt.
	// Returns the modified count.
	Update(ctx context.Context, id primitive.ObjectID, update model.BlogUpdate) (int64, error)

	// Delete removes a blog and returns the deleted count.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
