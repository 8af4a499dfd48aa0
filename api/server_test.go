package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/urbanmorph/transport-qol-api/cache"
	"github.com/urbanmorph/transport-qol-api/schema"
	"github.com/urbanmorph/transport-qol-api/score"
)

func newTestServer() (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	engine := score.NewEngine(schema.DefaultBaseline, score.NewStaticFacts())
	server := NewServer(engine, nil, cache.NewMemoryLiveData(), false)
	return server, server.setupRouter()
}

func TestAllQoL(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/qol", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cities []schema.CityQoLScore `json:"cities"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Cities, len(schema.DefaultBaseline))

	// sorted by composite, best first
	for i := 1; i < len(resp.Cities); i++ {
		assert.GreaterOrEqual(t, resp.Cities[i-1].Composite, resp.Cities[i].Composite)
	}
}

func TestCityQoL(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/cities/bengaluru/qol", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var qol schema.CityQoLScore
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &qol))
	assert.Equal(t, "bengaluru", qol.CityID)
	assert.Len(t, qol.Dimensions, 5)
	assert.NotEmpty(t, qol.Grade)
}

func TestCityQoLUnknownCity(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/cities/gotham/qol", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunScenario(t *testing.T) {
	_, router := newTestServer()

	body, _ := json.Marshal(map[string]interface{}{
		"values": map[string]float64{"metro_expansion": 150},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/cities/bengaluru/scenario", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result schema.ScenarioResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Greater(t, result.Scenario.Composite, result.Baseline.Composite)
	assert.Equal(t, result.Delta, result.Scenario.Composite-result.Baseline.Composite)
}

func TestRunScenarioPreset(t *testing.T) {
	_, router := newTestServer()

	body, _ := json.Marshal(map[string]interface{}{"preset": "transit_push"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/cities/bengaluru/scenario", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result schema.ScenarioResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.GreaterOrEqual(t, result.Scenario.Composite, result.Baseline.Composite)
}

func TestRunScenarioUnknownPreset(t *testing.T) {
	_, router := newTestServer()

	body, _ := json.Marshal(map[string]interface{}{"preset": "teleportation"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/cities/bengaluru/scenario", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunScenarioNegativeLever(t *testing.T) {
	_, router := newTestServer()

	body, _ := json.Marshal(map[string]interface{}{
		"values": map[string]float64{"metro_expansion": -10},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/cities/bengaluru/scenario", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCityGap(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/cities/kolkata/gap", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var gap schema.GapAnalysis
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &gap))
	assert.Equal(t, "kolkata", gap.CityID)
	assert.NotEmpty(t, gap.WorstDimension)
	assert.NotEmpty(t, gap.GapSentence)
}

func TestUpdateLiveValuesAffectsScore(t *testing.T) {
	server, router := newTestServer()

	before := server.engine.CityQoL("delhi", nil)

	body, _ := json.Marshal(map[string]interface{}{
		"values": map[string]*float64{"pm25_annual": schema.Float64(20)},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/v1/cities/delhi/live", bytes.NewReader(body))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/v1/cities/delhi/qol", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var after schema.CityQoLScore
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Greater(t, after.Composite, before.Composite)
}

func TestUpdateLiveValuesUnknownIndicator(t *testing.T) {
	_, router := newTestServer()

	body, _ := json.Marshal(map[string]interface{}{
		"values": map[string]*float64{"happiness_index": schema.Float64(7)},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/v1/cities/delhi/live", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreHistoryWithoutStore(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/cities/bengaluru/history", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthz(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPresets(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/presets", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Presets []schema.ScenarioPreset `json:"presets"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Presets)
}
