package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) runScenario(c *gin.Context) {
	cityID := c.Param("cityID")

	var params struct {
		Preset string             `json:"preset"`
		Values map[string]float64 `json:"values"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	for _, lever := range params.Values {
		if lever < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	overrides := s.liveOverrides(c)

	values := params.Values
	if params.Preset != "" {
		presetValues, ok := s.engine.ResolvePreset(cityID, params.Preset, overrides)
		if !ok {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownPreset)
			return
		}
		// explicit slider values win over the preset
		for lever, v := range params.Values {
			presetValues[lever] = v
		}
		values = presetValues
	}

	result := s.engine.ScenarioResult(cityID, values, overrides)
	if result == nil {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownCity)
		return
	}

	c.JSON(http.StatusOK, result)
}
