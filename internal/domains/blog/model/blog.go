package model

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAuthor is stored when a blog is created without an author.
const DefaultAuthor = "Anonymous"

// blogIDPattern matches the hex form of a MongoDB ObjectID.
var blogIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// =====================================================
// BLOG ENTITY
// =====================================================

// Blog is a document of the "blogs" collection.
//
// The identifier is exposed as "_id" on the wire as well, the browser
// client reads it from there.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Author    string             `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BlogUpdate holds the fields of a partial update. Nil fields are left
// untouched in the stored document.
type BlogUpdate struct {
	Title  *string
	Body   *string
	Author *string
}

// IsEmpty reports whether the update carries no field at all.
func (u BlogUpdate) IsEmpty() bool {
	return u.Title == nil && u.Body == nil && u.Author == nil
}

// =====================================================
// IDENTIFIER HELPERS
// =====================================================

// IsValidBlogID reports whether id is exactly 24 hex characters.
func IsValidBlogID(id string) bool {
	return blogIDPattern.MatchString(id)
}

// ParseBlogID converts a path identifier into an ObjectID.
func ParseBlogID(id string) (primitive.ObjectID, error) {
	if !IsValidBlogID(id) {
		return primitive.NilObjectID, NewInvalidBlogIDError()
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, NewInvalidBlogIDError()
	}
	return oid, nil
}
