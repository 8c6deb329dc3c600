package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-api/internal/domains/blog/model"
)

// =====================================================
// MONGO REPOSITORY IMPLEMENTATION
// =====================================================

type mongoBlogRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoBlogRepository(collection *mongo.Collection) BlogRepository {
	return &mongoBlogRepository{
		collection: collection,
		now:        time.Now,
	}
}

// timestamp returns the current time at the precision BSON datetimes keep.
func (r *mongoBlogRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

// =====================================================
// CREATE
// =====================================================

func (r *mongoBlogRepository) Create(ctx context.Context, blog *model.Blog) (primitive.ObjectID, error) {
	now := r.timestamp()
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		log.Error().Err(err).Msg("Error in creating blog")
		return primitive.NilObjectID, model.NewStoreError("insert blog", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		blog.ID = oid
	}
	return blog.ID, nil
}

// =====================================================
// LIST
// =====================================================

func (r *mongoBlogRepository) List(ctx context.Context) ([]*model.Blog, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		log.Error().Err(err).Msg("Error fetching blogs")
		return nil, model.NewStoreError("find blogs", err)
	}
	defer cursor.Close(ctx)

	blogs := make([]*model.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		log.Error().Err(err).Msg("Error decoding blogs")
		return nil, model.NewStoreError("decode blogs", err)
	}
	if blogs == nil {
		blogs = make([]*model.Blog, 0)
	}
	return blogs, nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *mongoBlogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	var blog model.Blog
	err := r.collection.FindOne(ctx, byID(id)).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.NewBlogNotFoundError()
		}
		log.Error().Err(err).Str("blog_id", id.Hex()).Msg("Error fetching blog")
		return nil, model.NewStoreError("find blog", err)
	}
	return &blog, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *mongoBlogRepository) Update(ctx context.Context, id primitive.ObjectID, update model.BlogUpdate) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, byID(id), buildUpdateDocument(update, r.timestamp()))
	if err != nil {
		log.Error().Err(err).Str("blog_id", id.Hex()).Msg("Error updating blog")
		return 0, model.NewStoreError("update blog", err)
	}

	// Matched, not modified: an update writing identical values still hits.
	if result.MatchedCount == 0 {
		return 0, model.NewBlogNotFoundError()
	}
	return result.ModifiedCount, nil
}

// =====================================================
// DELETE
// =====================================================

func (r *mongoBlogRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("blog_id", id.Hex()).Msg("Error deleting blog")
		return 0, model.NewStoreError("delete blog", err)
	}

	if result.DeletedCount == 0 {
		return 0, model.NewBlogNotFoundError()
	}
	return result.DeletedCount, nil
}

// =====================================================
// HELPERS
// =====================================================

func byID(id primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// buildUpdateDocument builds the $set document for a partial update.
func buildUpdateDocument(update model.BlogUpdate, now time.Time) bson.D {
	set := bson.D{}
	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Body != nil {
		set = append(set, bson.E{Key: "body", Value: *update.Body})
	}
	if update.Author != nil {
		set = append(set, bson.E{Key: "author", Value: *update.Author})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: now})

	return bson.D{{Key: "$set", Value: set}}
}
