package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// updateLiveValues accepts fresh indicator readings for a city. A null value
// marks the indicator as currently unmeasured, which shadows the baseline.
func (s *Server) updateLiveValues(c *gin.Context) {
	cityID := c.Param("cityID")

	if s.engine.CityQoL(cityID, nil) == nil {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownCity)
		return
	}

	var params struct {
		Values schema.CityValues `json:"values"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if len(params.Values) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	for key := range params.Values {
		if _, ok := s.engine.IndicatorDefinition(key); !ok {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownIndicator, fmt.Errorf("indicator %q", key))
			return
		}
	}

	if err := s.liveData.SetLiveValues(c.Request.Context(), cityID, params.Values); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}
