package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	defaultTimeout = 10 * time.Second
	mongoLogPrefix = "mongo"
)

// QoLStore is the full storage surface of the service: baseline city values,
// external facts for the confidence estimator, and composite score history.
type QoLStore interface {
	City
	Facts
	ScoreHistory

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a mongodb backed QoLStore.
func NewMongoStore(client *mongo.Client, database string) QoLStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
