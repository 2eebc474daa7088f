package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/technohippy/aiid/internal/domain"
)

type IncidentRepository struct {
	collection *mongo.Collection
}

func NewIncidentRepository(db *mongo.Database) *IncidentRepository {
	return &IncidentRepository{collection: db.Collection("incidents")}
}

func (r *IncidentRepository) FindByIDs(ctx context.Context, ids []int32) ([]domain.Incident, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"incident_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var incidents []domain.Incident
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *IncidentRepository) LastIncidentID(ctx context.Context) (int32, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "incident_id", Value: -1}})
	var last struct {
		IncidentID int32 `bson:"incident_id"`
	}
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.IncidentID, nil
}

func (r *IncidentRepository) Insert(ctx context.Context, incident domain.Incident) error {
	_, err := r.collection.InsertOne(ctx, incident)
	return err
}

func (r *IncidentRepository) Update(ctx context.Context, incident domain.Incident) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"incident_id": incident.IncidentID},
		bson.M{"$set": incident},
	)
	return err
}

func (r *IncidentRepository) AppendReports(ctx context.Context, incidentID int32, reportNumbers []int32) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"incident_id": incidentID},
		bson.M{"$addToSet": bson.M{"reports": bson.M{"$each": reportNumbers}}},
	)
	return err
}
