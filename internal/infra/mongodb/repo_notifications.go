package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/technohippy/aiid/internal/domain"
)

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("notifications")}
}

type notificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Type       string             `bson:"type"`
	IncidentID int32              `bson:"incident_id"`
	UserID     string             `bson:"userId,omitempty"`
	Processed  bool               `bson:"processed"`
}

func (r *NotificationRepository) Insert(ctx context.Context, notification domain.Notification) error {
	model := notificationModel{
		Type:       notification.Type,
		IncidentID: notification.IncidentID,
		UserID:     notification.UserID,
		Processed:  notification.Processed,
	}
	_, err := r.collection.InsertOne(ctx, model)
	return err
}

func (r *NotificationRepository) FindPending(ctx context.Context) ([]domain.Notification, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"processed": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []notificationModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	notifications := make([]domain.Notification, 0, len(models))
	for _, model := range models {
		notifications = append(notifications, domain.Notification{
			ID:         model.ID.Hex(),
			Type:       model.Type,
			IncidentID: model.IncidentID,
			UserID:     model.UserID,
			Processed:  model.Processed,
		})
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkProcessed(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"processed": true}},
	)
	return err
}
