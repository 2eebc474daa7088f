package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/technohippy/aiid/internal/domain"
)

type SubmissionRepository struct {
	collection *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{collection: db.Collection("submissions")}
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*domain.Submission, error) {
	var submission domain.Submission
	err := r.collection.FindOne(ctx, idFilter(id)).Decode(&submission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, idFilter(id))
	return err
}

// idFilter matches on _id, accepting either a hex ObjectID or a raw string
// identifier.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}
