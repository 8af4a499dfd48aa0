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

// Facts serves the external evidence the confidence estimator reads. Lookups
// are advisory: a read failure degrades confidence instead of failing the
// scoring request, so errors are logged and zero values returned.
type Facts interface {
	ReadinessSummary(cityID string) (schema.ReadinessSummary, bool)
	DataLayerStatus(cityID, layer string) schema.LayerStatus
	TransitSources(cityID string) (schema.TransitSources, bool)
	SensorCounts(cityID string) schema.SensorCounts

	SeedFacts() error
}

type readinessRecord struct {
	CityID  string                        `bson:"city_id"`
	Summary schema.ReadinessSummary       `bson:"summary"`
	Layers  map[string]schema.LayerStatus `bson:"layers"`
}

type transitRecord struct {
	CityID  string                `bson:"city_id"`
	Sources schema.TransitSources `bson:"sources"`
}

type sensorRecord struct {
	CityID  string              `bson:"city_id"`
	Sensors schema.SensorCounts `bson:"sensors"`
}

// ReadinessSummary returns the stored checklist summary for a city.
func (m *mongoDB) ReadinessSummary(cityID string) (schema.ReadinessSummary, bool) {
	rec, ok := m.readinessRecord(cityID)
	if !ok {
		return schema.ReadinessSummary{}, false
	}
	return rec.Summary, true
}

// DataLayerStatus returns the availability of one named data layer.
func (m *mongoDB) DataLayerStatus(cityID, layer string) schema.LayerStatus {
	rec, ok := m.readinessRecord(cityID)
	if !ok {
		return schema.LayerStatusUnavailable
	}
	status, ok := rec.Layers[layer]
	if !ok {
		return schema.LayerStatusUnavailable
	}
	return status
}

func (m *mongoDB) readinessRecord(cityID string) (readinessRecord, bool) {
	c := m.client.Database(m.database).Collection(schema.ReadinessCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var rec readinessRecord
	err := c.FindOne(ctx, bson.M{"city_id": cityID}).Decode(&rec)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.WithFields(log.Fields{
				"prefix":  mongoLogPrefix,
				"city_id": cityID,
				"error":   err,
			}).Warn("get readiness record")
		}
		return readinessRecord{}, false
	}
	return rec, true
}

// TransitSources returns the recorded transit feeds for a city.
func (m *mongoDB) TransitSources(cityID string) (schema.TransitSources, bool) {
	c := m.client.Database(m.database).Collection(schema.TransitSourceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var rec transitRecord
	err := c.FindOne(ctx, bson.M{"city_id": cityID}).Decode(&rec)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.WithFields(log.Fields{
				"prefix":  mongoLogPrefix,
				"city_id": cityID,
				"error":   err,
			}).Warn("get transit sources")
		}
		return schema.TransitSources{}, false
	}
	return rec.Sources, true
}

// SensorCounts returns the configured air-quality sensor counts for a city.
func (m *mongoDB) SensorCounts(cityID string) schema.SensorCounts {
	c := m.client.Database(m.database).Collection(schema.SensorCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var rec sensorRecord
	err := c.FindOne(ctx, bson.M{"city_id": cityID}).Decode(&rec)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.WithFields(log.Fields{
				"prefix":  mongoLogPrefix,
				"city_id": cityID,
				"error":   err,
			}).Warn("get sensor counts")
		}
		return schema.SensorCounts{}
	}
	return rec.Sensors
}

// SeedFacts upserts the default readiness, transit and sensor records so a
// fresh database serves the same evidence as the built-in static set.
func (m *mongoDB) SeedFacts() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	upsert := options.Replace().SetUpsert(true)

	for cityID, summary := range schema.DefaultReadiness {
		_, err := db.Collection(schema.ReadinessCollection).ReplaceOne(ctx, bson.M{"city_id": cityID}, readinessRecord{
			CityID:  cityID,
			Summary: summary,
			Layers:  schema.DefaultLayerStatus[cityID],
		}, upsert)
		if err != nil {
			return err
		}
	}

	for cityID, sources := range schema.DefaultTransitSources {
		_, err := db.Collection(schema.TransitSourceCollection).ReplaceOne(ctx, bson.M{"city_id": cityID}, transitRecord{
			CityID:  cityID,
			Sources: sources,
		}, upsert)
		if err != nil {
			return err
		}
	}

	for cityID, sensors := range schema.DefaultSensorCounts {
		_, err := db.Collection(schema.SensorCollection).ReplaceOne(ctx, bson.M{"city_id": cityID}, sensorRecord{
			CityID:  cityID,
			Sensors: sensors,
		}, upsert)
		if err != nil {
			return err
		}
	}

	return nil
}
