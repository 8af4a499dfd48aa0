package schema

const (
	ScoreHistoryCollection = "scoreHistory"
)

// ScoreRecord is one daily composite score snapshot for a city. Records are
// upserted by (city, date), so recomputations within a day overwrite instead
// of accumulating.
type ScoreRecord struct {
	CityID string  `bson:"city_id"`
	Score  float64 `bson:"score"`
	Grade  string  `bson:"grade"`
	RunID  string  `bson:"run_id"`
	Date   string  `bson:"date"`
	Ts     int64   `bson:"ts"`
}
