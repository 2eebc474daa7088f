package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/technohippy/aiid/internal/domain"
)

type SubscriptionRepository struct {
	collection *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{collection: db.Collection("subscriptions")}
}

func (r *SubscriptionRepository) FindByType(ctx context.Context, subscriptionType string, incidentID int32) ([]domain.Subscription, error) {
	filter := bson.M{"type": subscriptionType}
	if incidentID != 0 {
		filter["incident_id"] = incidentID
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscriptions []domain.Subscription
	if err := cursor.All(ctx, &subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}
