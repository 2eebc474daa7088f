package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/technohippy/aiid/internal/domain"
)

// History snapshots live in their own database, in collections named after
// the primary collections they shadow.

type IncidentHistoryRepository struct {
	collection *mongo.Collection
}

func NewIncidentHistoryRepository(db *mongo.Database) *IncidentHistoryRepository {
	return &IncidentHistoryRepository{collection: db.Collection("incidents")}
}

func (r *IncidentHistoryRepository) Insert(ctx context.Context, snapshot domain.IncidentHistory) error {
	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}

type ReportHistoryRepository struct {
	collection *mongo.Collection
}

func NewReportHistoryRepository(db *mongo.Database) *ReportHistoryRepository {
	return &ReportHistoryRepository{collection: db.Collection("reports")}
}

func (r *ReportHistoryRepository) Insert(ctx context.Context, snapshot domain.ReportHistory) error {
	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}
