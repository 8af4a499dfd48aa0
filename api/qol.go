package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// liveOverrides assembles the current live-data overrides. Live data is
// advisory, so a cache failure degrades to baseline-only scoring.
func (s *Server) liveOverrides(c *gin.Context) schema.Overrides {
	if s.liveData == nil {
		return nil
	}
	overrides, err := s.liveData.LiveOverrides(c.Request.Context(), s.engine.CityIDs())
	if err != nil {
		log.WithError(err).Warn("fail to read live overrides, scoring from baseline")
		return nil
	}
	return overrides
}

func (s *Server) allQoL(c *gin.Context) {
	overrides := s.liveOverrides(c)
	scores := s.engine.AllQoL(overrides)

	lang := c.Query("lang")
	for i := range scores {
		localizeScore(&scores[i], lang)
	}

	s.recordScores(scores)

	c.JSON(http.StatusOK, gin.H{"cities": scores})
}

func (s *Server) cityQoL(c *gin.Context) {
	cityID := c.Param("cityID")

	qol := s.engine.CityQoL(cityID, s.liveOverrides(c))
	if qol == nil {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownCity)
		return
	}

	localizeScore(qol, c.Query("lang"))

	c.JSON(http.StatusOK, qol)
}

func (s *Server) scoreHistory(c *gin.Context) {
	if s.mongoStore == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorUnavailable)
		return
	}

	cityID := c.Param("cityID")
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if days <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	records, err := s.mongoStore.GetScoreRecords(cityID, start.Unix(), end.Unix())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	average, err := s.mongoStore.GetScoreAverage(cityID, start.Unix(), end.Unix())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"city_id": cityID,
		"days":    days,
		"average": average,
		"records": records,
	})
}

// recordScores upserts today's snapshot for every scored city. History is a
// byproduct of serving, so failures are logged and the response unaffected.
func (s *Server) recordScores(scores []schema.CityQoLScore) {
	if s.mongoStore == nil {
		return
	}

	runID := uuid.New().String()
	ts := time.Now().Unix()
	for _, qol := range scores {
		if err := s.mongoStore.AddScoreRecord(qol.CityID, qol.Grade, runID, qol.Composite*100, ts); err != nil {
			log.WithError(err).WithField("city_id", qol.CityID).Warn("fail to record score history")
		}
	}
}
