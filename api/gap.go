package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) cityGap(c *gin.Context) {
	cityID := c.Param("cityID")

	gap := s.engine.CityGap(cityID, s.liveOverrides(c))
	if gap == nil {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownCity)
		return
	}

	c.JSON(http.StatusOK, gap)
}

func (s *Server) allGaps(c *gin.Context) {
	gaps := s.engine.AllGaps(s.liveOverrides(c))
	c.JSON(http.StatusOK, gin.H{"gaps": gaps})
}
