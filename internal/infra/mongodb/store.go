package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/technohippy/aiid/internal/config"
)

// Store holds the three logical databases the workflow touches: the
// primary incident data, the custom user data (notifications and
// subscriptions), and the append-only history audit trail.
type Store struct {
	Client  *mongo.Client
	Primary *mongo.Database
	Custom  *mongo.Database
	History *mongo.Database
}

func NewStore(ctx context.Context, cfg config.Config) (*Store, error) {
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Store{
		Client:  client,
		Primary: client.Database(cfg.PrimaryDBName),
		Custom:  client.Database(cfg.CustomDataDB),
		History: client.Database(cfg.HistoryDBName),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}
