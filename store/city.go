package store

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// ErrCityNotFound is returned when a city id has no baseline record.
var ErrCityNotFound = errors.New("city not found")

// City reads and seeds per-city indicator baselines.
type City interface {
	GetCityValues(cityID string) (schema.CityValues, error)
	ListCityValues() (map[string]schema.CityValues, error)
	SeedBaseline(baseline map[string]schema.CityValues) error
}

type cityValueRecord struct {
	CityID string              `bson:"city_id"`
	Values map[string]*float64 `bson:"values"`
}

// GetCityValues returns the measured indicator values for one city.
func (m *mongoDB) GetCityValues(cityID string) (schema.CityValues, error) {
	c := m.client.Database(m.database).Collection(schema.CityValueCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var rec cityValueRecord
	err := c.FindOne(ctx, bson.M{"city_id": cityID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCityNotFound
		}
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"city_id": cityID,
			"error":   err,
		}).Error("get city values")
		return nil, err
	}

	return schema.CityValues(rec.Values), nil
}

// ListCityValues returns the baseline for every seeded city, keyed by city id.
func (m *mongoDB) ListCityValues() (map[string]schema.CityValues, error) {
	c := m.client.Database(m.database).Collection(schema.CityValueCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list city values")
		return nil, err
	}
	defer cur.Close(ctx)

	baseline := make(map[string]schema.CityValues)
	for cur.Next(ctx) {
		var rec cityValueRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		baseline[rec.CityID] = schema.CityValues(rec.Values)
	}

	return baseline, cur.Err()
}

// SeedBaseline upserts the given baseline, one record per city. Existing
// records are replaced so re-seeding after a framework change is safe.
func (m *mongoDB) SeedBaseline(baseline map[string]schema.CityValues) error {
	c := m.client.Database(m.database).Collection(schema.CityValueCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	for cityID, values := range baseline {
		opts := options.Replace().SetUpsert(true)
		_, err := c.ReplaceOne(ctx, bson.M{"city_id": cityID}, cityValueRecord{
			CityID: cityID,
			Values: values,
		}, opts)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":  mongoLogPrefix,
				"city_id": cityID,
				"error":   err,
			}).Error("seed baseline")
			return err
		}
	}

	return nil
}
