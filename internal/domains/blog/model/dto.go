package model

import (
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateBlogRequest request to create a blog.
//
// Fields are pointers so a missing field and an empty string can be told
// apart.
type CreateBlogRequest struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Author *string `json:"author"`
}

// Validate checks title then body. The first failing field wins.
func (r *CreateBlogRequest) Validate() error {
	if err := validation.Validate(trimmed(r.Title), validation.Required.Error(MsgTitleRequired)); err != nil {
		return NewValidationError(err.Error())
	}
	if err := validation.Validate(trimmed(r.Body), validation.Required.Error(MsgBodyRequired)); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

// ToBlog builds the document to insert. Call Validate first.
func (r *CreateBlogRequest) ToBlog() *Blog {
	author := trimmed(r.Author)
	return &Blog{
		Title:  trimmed(r.Title),
		Body:   trimmed(r.Body),
		Author: lo.Ternary(author == "", DefaultAuthor, author),
	}
}

// UpdateBlogRequest request to update a blog. Any subset of the fields may
// be sent.
type UpdateBlogRequest struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Author *string `json:"author"`
}

func (r *UpdateBlogRequest) Validate() error {
	if r.Title != nil {
		if err := validation.Validate(trimmed(r.Title), validation.Required.Error(MsgTitleEmpty)); err != nil {
			return NewValidationError(err.Error())
		}
	}
	if r.Body != nil {
		if err := validation.Validate(trimmed(r.Body), validation.Required.Error(MsgBodyEmpty)); err != nil {
			return NewValidationError(err.Error())
		}
	}
	if r.ToUpdate().IsEmpty() {
		return NewValidationError(MsgNoUpdateFields)
	}
	return nil
}

// ToUpdate returns the trimmed update set. Author is kept even when it
// trims to an empty string.
func (r *UpdateBlogRequest) ToUpdate() BlogUpdate {
	var update BlogUpdate
	if r.Title != nil {
		update.Title = lo.ToPtr(trimmed(r.Title))
	}
	if r.Body != nil {
		update.Body = lo.ToPtr(trimmed(r.Body))
	}
	if r.Author != nil {
		update.Author = lo.ToPtr(trimmed(r.Author))
	}
	return update
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// CreateBlogResponse is the payload answered after an insert.
type CreateBlogResponse struct {
	ID primitive.ObjectID `json:"id"`
}

// trimmed strips surrounding white space, counting the byte order mark as
// white space too.
func trimmed(s *string) string {
	return strings.TrimFunc(lo.FromPtr(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
