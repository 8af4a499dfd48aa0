package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer = errorResponse{Code: 500, Message: "internal server error"}
	errorUnavailable    = errorResponse{Code: 503, Message: "persistence not configured"}

	errorInvalidParameters = errorResponse{Code: 1000, Message: "invalid parameters"}
	errorUnknownCity       = errorResponse{Code: 1001, Message: "unknown city"}
	errorUnknownPreset     = errorResponse{Code: 1002, Message: "unknown scenario preset"}
	errorUnknownIndicator  = errorResponse{Code: 1003, Message: "unknown indicator"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("api error")
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}
