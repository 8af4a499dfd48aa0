package poller

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/urbanmorph/transport-qol-api/cache"
	"github.com/urbanmorph/transport-qol-api/external/aqair"
	"github.com/urbanmorph/transport-qol-api/schema"
)

var ErrFeedNotFound = errors.New("city feed not found")

// PollutionSource resolves current PM2.5 and NO2 readings for a city.
type PollutionSource interface {
	CurrentPollution(cityID string) (pm25, no2 float64, err error)
}

// AQAirSource reads pollution from the aqair feed. Feed queries use the
// city's registered display name, not the internal id.
type AQAirSource struct {
	client    *aqair.AQAirClient
	cityNames map[string]string
}

func NewAQAirSource(endpoint, apiKey string, cityNames map[string]string) *AQAirSource {
	return &AQAirSource{
		client:    aqair.New(endpoint, apiKey),
		cityNames: cityNames,
	}
}

func (a *AQAirSource) CurrentPollution(cityID string) (float64, float64, error) {
	name, ok := a.cityNames[cityID]
	if !ok {
		return 0, 0, ErrFeedNotFound
	}

	feed, err := a.client.Query(name)
	if err != nil {
		return 0, 0, err
	}

	return feed.PM25, feed.NO2, nil
}

// Poller periodically refreshes air-quality live values for every city.
type Poller struct {
	source   PollutionSource
	liveData cache.LiveData
	cityIDs  []string
	interval time.Duration
}

func New(source PollutionSource, liveData cache.LiveData, cityIDs []string, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		liveData: liveData,
		cityIDs:  cityIDs,
		interval: interval,
	}
}

// Run polls until ctx is cancelled. The first round runs immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.pollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context) {
	for _, cityID := range p.cityIDs {
		pm25, no2, err := p.source.CurrentPollution(cityID)
		if err != nil {
			if !errors.Is(err, ErrFeedNotFound) {
				log.WithError(err).WithField("city_id", cityID).Warn("fail to poll pollution feed")
			}
			continue
		}

		values := schema.CityValues{
			"pm25_annual": schema.Float64(pm25),
			"no2_annual":  schema.Float64(no2),
		}
		if err := p.liveData.SetLiveValues(ctx, cityID, values); err != nil {
			log.WithError(err).WithField("city_id", cityID).Warn("fail to store live pollution values")
		}
	}
}
