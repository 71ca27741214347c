package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k2demo/utils"
)

// GetK2DebugLog serves GET /api/k2/debug/:correlationId with the internal
// compiler trace. This is the only channel where offer reasoning and KPI
// numbers are reachable; it is never embedded in a search response.
func (hb *HandlerBundle) GetK2DebugLog(c *gin.Context) {
	log, ok := hb.DebugLogs.Get(c.Param("correlationId"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "no debug log for correlation id", c.Param("correlationId"))
		return
	}
	c.JSON(http.StatusOK, log)
}
