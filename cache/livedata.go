package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/urbanmorph/transport-qol-api/schema"
)

const (
	liveKeyPrefix  = "live:"
	defaultLiveTTL = 2 * time.Hour

	// stored value for an indicator explicitly marked unmeasured
	nullMarker = "null"
)

// LiveData holds short-lived per-city indicator overrides, fed by sensor
// polls and manual updates. Entries expire so a stalled feed falls back to
// the stored baseline instead of serving stale readings forever.
type LiveData interface {
	SetLiveValues(ctx context.Context, cityID string, values schema.CityValues) error
	LiveValues(ctx context.Context, cityID string) (schema.CityValues, error)
	LiveOverrides(ctx context.Context, cityIDs []string) (schema.Overrides, error)
}

// NewLiveData connects to redis at redisURL, falling back to an in-process
// store when redis is unreachable.
func NewLiveData(redisURL string) LiveData {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.WithError(err).Warn("invalid redis url, using in-memory live data")
		return NewMemoryLiveData()
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unreachable, using in-memory live data")
		return NewMemoryLiveData()
	}
	return &RedisLiveData{client: client, ttl: defaultLiveTTL}
}

// RedisLiveData keeps one redis hash per city under "live:<cityID>".
type RedisLiveData struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisLiveData) SetLiveValues(ctx context.Context, cityID string, values schema.CityValues) error {
	if len(values) == 0 {
		return nil
	}

	key := liveKeyPrefix + cityID
	fields := make(map[string]interface{}, len(values))
	for indicator, value := range values {
		if value == nil {
			fields[indicator] = nullMarker
			continue
		}
		fields[indicator] = strconv.FormatFloat(*value, 'f', -1, 64)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisLiveData) LiveValues(ctx context.Context, cityID string) (schema.CityValues, error) {
	fields, err := r.client.HGetAll(ctx, liveKeyPrefix+cityID).Result()
	if err != nil {
		return nil, err
	}

	values := make(schema.CityValues, len(fields))
	for indicator, raw := range fields {
		if raw == nullMarker {
			values[indicator] = nil
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.WithFields(log.Fields{
				"city_id":   cityID,
				"indicator": indicator,
				"value":     raw,
			}).Warn("drop unparsable live value")
			continue
		}
		values[indicator] = schema.Float64(v)
	}

	return values, nil
}

func (r *RedisLiveData) LiveOverrides(ctx context.Context, cityIDs []string) (schema.Overrides, error) {
	overrides := make(schema.Overrides)
	for _, cityID := range cityIDs {
		values, err := r.LiveValues(ctx, cityID)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			overrides[cityID] = values
		}
	}
	return overrides, nil
}

// MemoryLiveData is the in-process fallback used when redis is not
// configured, and in tests.
type MemoryLiveData struct {
	mu     sync.Mutex
	cities map[string]memCityValues
	ttl    time.Duration
}

type memCityValues struct {
	values schema.CityValues
	exp    time.Time
}

func NewMemoryLiveData() *MemoryLiveData {
	return &MemoryLiveData{
		cities: make(map[string]memCityValues),
		ttl:    defaultLiveTTL,
	}
}

func (m *MemoryLiveData) SetLiveValues(_ context.Context, cityID string, values schema.CityValues) error {
	if len(values) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.cities[cityID]
	if !ok || time.Now().After(entry.exp) {
		entry = memCityValues{values: make(schema.CityValues, len(values))}
	}
	for indicator, value := range values {
		entry.values[indicator] = value
	}
	entry.exp = time.Now().Add(m.ttl)
	m.cities[cityID] = entry
	return nil
}

func (m *MemoryLiveData) LiveValues(_ context.Context, cityID string) (schema.CityValues, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.cities[cityID]
	if !ok {
		return schema.CityValues{}, nil
	}
	if time.Now().After(entry.exp) {
		delete(m.cities, cityID)
		return schema.CityValues{}, nil
	}
	return entry.values.Clone(), nil
}

func (m *MemoryLiveData) LiveOverrides(ctx context.Context, cityIDs []string) (schema.Overrides, error) {
	overrides := make(schema.Overrides)
	for _, cityID := range cityIDs {
		values, err := m.LiveValues(ctx, cityID)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			overrides[cityID] = values
		}
	}
	return overrides, nil
}
