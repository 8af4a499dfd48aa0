package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/urbanmorph/transport-qol-api/schema"
)

func TestMemoryLiveDataSetAndGet(t *testing.T) {
	ctx := context.Background()
	live := NewMemoryLiveData()

	err := live.SetLiveValues(ctx, "bengaluru", schema.CityValues{
		"pm25_annual": schema.Float64(41),
		"no2_annual":  nil,
	})
	assert.NoError(t, err)

	values, err := live.LiveValues(ctx, "bengaluru")
	assert.NoError(t, err)
	assert.Equal(t, 41.0, *values["pm25_annual"])
	v, ok := values["no2_annual"]
	assert.True(t, ok)
	assert.Nil(t, v)

	values, err = live.LiveValues(ctx, "pune")
	assert.NoError(t, err)
	assert.Empty(t, values)
}

func TestMemoryLiveDataMerge(t *testing.T) {
	ctx := context.Background()
	live := NewMemoryLiveData()

	assert.NoError(t, live.SetLiveValues(ctx, "delhi", schema.CityValues{
		"pm25_annual": schema.Float64(95),
	}))
	assert.NoError(t, live.SetLiveValues(ctx, "delhi", schema.CityValues{
		"no2_annual": schema.Float64(52),
	}))

	values, err := live.LiveValues(ctx, "delhi")
	assert.NoError(t, err)
	assert.Equal(t, 95.0, *values["pm25_annual"])
	assert.Equal(t, 52.0, *values["no2_annual"])
}

func TestMemoryLiveDataExpiry(t *testing.T) {
	ctx := context.Background()
	live := NewMemoryLiveData()
	live.ttl = 10 * time.Millisecond

	assert.NoError(t, live.SetLiveValues(ctx, "mumbai", schema.CityValues{
		"pm25_annual": schema.Float64(48),
	}))
	time.Sleep(20 * time.Millisecond)

	values, err := live.LiveValues(ctx, "mumbai")
	assert.NoError(t, err)
	assert.Empty(t, values)
}

func TestMemoryLiveDataOverrides(t *testing.T) {
	ctx := context.Background()
	live := NewMemoryLiveData()

	assert.NoError(t, live.SetLiveValues(ctx, "chennai", schema.CityValues{
		"pm25_annual": schema.Float64(29),
	}))

	overrides, err := live.LiveOverrides(ctx, []string{"chennai", "kolkata"})
	assert.NoError(t, err)
	assert.Len(t, overrides, 1)
	v, ok := overrides.Value("chennai", "pm25_annual")
	assert.True(t, ok)
	assert.Equal(t, 29.0, v)
	_, ok = overrides.Value("kolkata", "pm25_annual")
	assert.False(t, ok)
}

func TestMemoryLiveDataReturnsCopy(t *testing.T) {
	ctx := context.Background()
	live := NewMemoryLiveData()

	assert.NoError(t, live.SetLiveValues(ctx, "pune", schema.CityValues{
		"pm25_annual": schema.Float64(38),
	}))

	values, err := live.LiveValues(ctx, "pune")
	assert.NoError(t, err)
	values["pm25_annual"] = schema.Float64(999)

	again, err := live.LiveValues(ctx, "pune")
	assert.NoError(t, err)
	assert.Equal(t, 38.0, *again["pm25_annual"])
}
