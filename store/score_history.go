package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// ScoreHistory keeps daily composite score snapshots per city.
type ScoreHistory interface {
	AddScoreRecord(cityID, grade, runID string, score float64, ts int64) error
	GetScoreAverage(cityID string, start, end int64) (float64, error)
	GetScoreRecords(cityID string, start, end int64) ([]schema.ScoreRecord, error)
}

// AddScoreRecord upserts the score snapshot for a city on the day of ts.
// Recomputations within the same day overwrite the earlier snapshot.
func (m *mongoDB) AddScoreRecord(cityID, grade, runID string, score float64, ts int64) error {
	c := m.client.Database(m.database).Collection(schema.ScoreHistoryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	date := time.Unix(ts, 0).Format("2006-01-02")
	query := bson.M{"city_id": cityID, "date": date}
	update := bson.M{
		"$set": bson.M{
			"score":  score,
			"grade":  grade,
			"run_id": runID,
			"ts":     ts,
		},
		"$setOnInsert": bson.M{
			"city_id": cityID,
			"date":    date,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx, query, update, opts)
	return err
}

// GetScoreAverage returns the mean composite score for a city over the
// inclusive date range [start, end]. A city with no records averages to zero.
func (m *mongoDB) GetScoreAverage(cityID string, start, end int64) (float64, error) {
	c := m.client.Database(m.database).Collection(schema.ScoreHistoryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	startDate := time.Unix(start, 0).Format("2006-01-02")
	endDate := time.Unix(end, 0).Format("2006-01-02")
	pipeline := []bson.M{
		{
			"$match": bson.M{
				"city_id": cityID,
				"date":    bson.M{"$gte": startDate, "$lte": endDate},
			},
		},
		{
			"$group": bson.M{
				"_id": "$city_id",
				"avg": bson.M{
					"$avg": "$score",
				},
			},
		},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	if !cursor.Next(ctx) {
		return 0, nil
	}

	var result struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, err
	}

	return result.Avg, nil
}

// GetScoreRecords returns the daily snapshots for a city in the inclusive
// range [start, end], oldest first.
func (m *mongoDB) GetScoreRecords(cityID string, start, end int64) ([]schema.ScoreRecord, error) {
	c := m.client.Database(m.database).Collection(schema.ScoreHistoryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	startDate := time.Unix(start, 0).Format("2006-01-02")
	endDate := time.Unix(end, 0).Format("2006-01-02")
	query := bson.M{
		"city_id": cityID,
		"date":    bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().SetSort(bson.M{"date": 1})

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]schema.ScoreRecord, 0)
	for cursor.Next(ctx) {
		var rec schema.ScoreRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, cursor.Err()
}
