package poller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/urbanmorph/transport-qol-api/cache"
)

type stubSource struct {
	readings map[string][2]float64
}

func (s *stubSource) CurrentPollution(cityID string) (float64, float64, error) {
	r, ok := s.readings[cityID]
	if !ok {
		return 0, 0, ErrFeedNotFound
	}
	return r[0], r[1], nil
}

func TestPollOnce(t *testing.T) {
	ctx := context.Background()
	live := cache.NewMemoryLiveData()
	source := &stubSource{readings: map[string][2]float64{
		"bengaluru": {31.5, 24.0},
	}}

	p := New(source, live, []string{"bengaluru", "pune"}, time.Hour)
	p.pollOnce(ctx)

	values, err := live.LiveValues(ctx, "bengaluru")
	assert.NoError(t, err)
	assert.Equal(t, 31.5, *values["pm25_annual"])
	assert.Equal(t, 24.0, *values["no2_annual"])

	// no feed registered for pune, nothing stored
	values, err = live.LiveValues(ctx, "pune")
	assert.NoError(t, err)
	assert.Empty(t, values)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	live := cache.NewMemoryLiveData()
	p := New(&stubSource{}, live, nil, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
