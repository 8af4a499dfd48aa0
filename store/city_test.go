package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/urbanmorph/transport-qol-api/schema"
)

type CityTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewCityTestSuite(connURI, dbName string) *CityTestSuite {
	return &CityTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *CityTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *CityTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *CityTestSuite) TestSeedAndGetCityValues() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SeedBaseline(schema.DefaultBaseline))

	values, err := store.GetCityValues("bengaluru")
	s.NoError(err)
	s.Equal(schema.DefaultBaseline["bengaluru"], values)

	// nil entries for unmeasured indicators survive the round trip
	values, err = store.GetCityValues("pune")
	s.NoError(err)
	v, ok := values["pedestrian_fatality_share"]
	s.True(ok)
	s.Nil(v)

	_, err = store.GetCityValues("gotham")
	s.ErrorIs(err, ErrCityNotFound)
}

func (s *CityTestSuite) TestListCityValues() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SeedBaseline(schema.DefaultBaseline))

	baseline, err := store.ListCityValues()
	s.NoError(err)
	s.Len(baseline, len(schema.DefaultBaseline))
	for cityID := range schema.DefaultBaseline {
		s.Contains(baseline, cityID)
	}
}

func (s *CityTestSuite) TestReseedReplaces() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SeedBaseline(schema.DefaultBaseline))

	updated := schema.DefaultBaseline["bengaluru"].Clone()
	updated["metro_network_km"] = schema.Float64(96)
	s.NoError(store.SeedBaseline(map[string]schema.CityValues{"bengaluru": updated}))

	values, err := store.GetCityValues("bengaluru")
	s.NoError(err)
	s.Equal(96.0, *values["metro_network_km"])
}

func (s *CityTestSuite) TestSeedFacts() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SeedFacts())

	summary, ok := store.ReadinessSummary("bengaluru")
	s.True(ok)
	s.Equal(schema.DefaultReadiness["bengaluru"], summary)

	s.Equal(schema.LayerStatusAvailable, store.DataLayerStatus("bengaluru", schema.LayerAltmoTraces))
	s.Equal(schema.LayerStatusUnavailable, store.DataLayerStatus("gotham", schema.LayerAltmoTraces))

	sources, ok := store.TransitSources("delhi")
	s.True(ok)
	s.Equal(schema.DefaultTransitSources["delhi"], sources)
	_, ok = store.TransitSources("gotham")
	s.False(ok)

	s.Equal(schema.DefaultSensorCounts["mumbai"], store.SensorCounts("mumbai"))
	s.Equal(schema.SensorCounts{}, store.SensorCounts("gotham"))
}

func TestCityTestSuite(t *testing.T) {
	connURI := os.Getenv("QOL_TEST_MONGODB_URI")
	if connURI == "" {
		t.Skip("QOL_TEST_MONGODB_URI not set")
	}
	suite.Run(t, NewCityTestSuite(connURI, "test-db-city"))
}
