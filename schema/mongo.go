package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CityValueCollection     = "cityValues"
	ReadinessCollection     = "readiness"
	TransitSourceCollection = "transitSources"
	SensorCollection        = "sensors"
)

// MongoDBIndexer creates the indexes the store relies on.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexAll ensures indexes for every collection used by the service.
func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Error("fail to disconnect indexer client")
		}
	}()

	db := client.Database(m.database)

	unique := options.Index().SetUnique(true)

	for _, c := range []string{CityValueCollection, ReadinessCollection, TransitSourceCollection, SensorCollection} {
		if _, err := db.Collection(c).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "city_id", Value: 1}},
			Options: unique,
		}); err != nil {
			return err
		}
	}

	if _, err := db.Collection(ScoreHistoryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "city_id", Value: 1}, {Key: "date", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}

	return nil
}
