package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/urbanmorph/transport-qol-api/cache"
	"github.com/urbanmorph/transport-qol-api/score"
	"github.com/urbanmorph/transport-qol-api/store"
)

var log = logrus.WithField("prefix", "api")

// Server serves the QoL scoring API over gin.
type Server struct {
	server *http.Server

	engine     *score.Engine
	mongoStore store.QoLStore
	liveData   cache.LiveData

	traceMode bool
}

// NewServer returns a server. mongoStore may be nil when running without
// persistence (score history endpoints then return 503).
func NewServer(engine *score.Engine, mongoStore store.QoLStore, liveData cache.LiveData, traceMode bool) *Server {
	return &Server{
		engine:     engine,
		mongoStore: mongoStore,
		liveData:   liveData,
		traceMode:  traceMode,
	}
}

// Run starts the server on addr and blocks until it stops.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.healthz)

	api := r.Group("/v1")
	api.Use(s.DumpRequest)
	{
		api.GET("/qol", s.allQoL)
		api.GET("/gaps", s.allGaps)
		api.GET("/presets", s.listPresets)

		city := api.Group("/cities/:cityID")
		city.GET("/qol", s.cityQoL)
		city.POST("/scenario", s.runScenario)
		city.GET("/gap", s.cityGap)
		city.GET("/history", s.scoreHistory)
		city.PUT("/live", s.updateLiveValues)
	}

	return r
}

func (s *Server) healthz(c *gin.Context) {
	health := gin.H{"status": "ok"}
	if s.mongoStore != nil {
		if err := s.mongoStore.Ping(c.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["mongo"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, health)
			return
		}
	}
	c.JSON(http.StatusOK, health)
}

func (s *Server) listPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": s.engine.Presets()})
}
