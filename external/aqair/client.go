package aqair

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

// CityFeed is the current pollution reading for one city.
type CityFeed struct {
	City      string  `json:"city"`
	PM25      float64 `json:"pm25"`
	NO2       float64 `json:"no2"`
	UpdatedAt string  `json:"updated_at"`
}

type feedResponse struct {
	Status string   `json:"status"`
	Data   CityFeed `json:"data"`
}

type AQAirClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func New(endpoint, apiKey string) *AQAirClient {
	return &AQAirClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Query fetches the current pollution reading for a city.
func (a *AQAirClient) Query(city string) (*CityFeed, error) {
	q := url.URL{
		Path: "v2/city",
		RawQuery: url.Values{
			"city": []string{city},
			"key":  []string{a.apiKey},
		}.Encode(),
	}

	reqString := fmt.Sprintf("%s/%s", a.endpoint, q.String())
	log.WithField("prefix", "aqair").WithField("city", city).Debug("request from aqair")

	resp, err := a.client.Get(reqString)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	dumpBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.WithField("prefix", "aqair").WithError(err).Error("fail to dump response")
	}

	if resp.StatusCode != http.StatusOK {
		log.WithField("prefix", "aqair").WithField("resp", string(dumpBytes)).Error("error response from aqair")
		return nil, fmt.Errorf("fail to query city feed")
	}

	log.WithField("prefix", "aqair").WithField("resp", string(dumpBytes)).Debug("response from aqair")

	var result feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Status != "success" {
		return nil, fmt.Errorf("feed status: %s", result.Status)
	}

	return &result.Data, nil
}
