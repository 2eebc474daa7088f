package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/technohippy/aiid/internal/domain"
)

type ReportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{collection: db.Collection("reports")}
}

// FindByNumbers fetches one report per number, preserving the order given
// and skipping numbers with no matching document.
func (r *ReportRepository) FindByNumbers(ctx context.Context, numbers []int32) ([]domain.Report, error) {
	reports := make([]domain.Report, 0, len(numbers))
	for _, number := range numbers {
		var report domain.Report
		err := r.collection.FindOne(ctx, bson.M{"report_number": number}).Decode(&report)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *ReportRepository) LastReportNumber(ctx context.Context) (int32, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "report_number", Value: -1}})
	var last struct {
		ReportNumber int32 `bson:"report_number"`
	}
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ReportNumber, nil
}

func (r *ReportRepository) Insert(ctx context.Context, report domain.Report) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}
