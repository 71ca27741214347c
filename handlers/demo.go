package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k2demo/models"
	"k2demo/services/demo"
	"k2demo/services/demolog"
	"k2demo/utils"
)

// GetMode serves GET /api/demo/mode.
func (hb *HandlerBundle) GetMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": hb.Settings.Mode()})
}

// SetMode serves POST /api/demo/mode, switching between baseline and K2.
func (hb *HandlerBundle) SetMode(c *gin.Context) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Mode != demo.ModeBaseline && req.Mode != demo.ModeK2 {
		utils.JSONError(c, http.StatusBadRequest, "mode must be \"baseline\" or \"k2\"", req.Mode)
		return
	}

	applied := hb.Settings.SetMode(req.Mode)
	hb.Bus.Publish(demolog.Emit{
		Category: models.LogCategoryMerchant,
		Event:    "mode_changed",
		Message:  "merchant mode switched to " + applied,
		Payload:  map[string]any{"mode": applied},
	})
	c.JSON(http.StatusOK, gin.H{"mode": applied})
}

// GetIdentity serves GET /api/demo/identity.
func (hb *HandlerBundle) GetIdentity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"has_identity": hb.Settings.HasIdentity()})
}

// SetIdentity serves POST /api/demo/identity, toggling the simulated
// shopper identity used for offer gating.
func (hb *HandlerBundle) SetIdentity(c *gin.Context) {
	var req struct {
		HasIdentity *bool `json:"has_identity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.HasIdentity == nil {
		utils.JSONError(c, http.StatusBadRequest, "has_identity boolean is required", "")
		return
	}

	hb.Settings.SetIdentity(*req.HasIdentity)
	hb.Bus.Publish(demolog.Emit{
		Category: models.LogCategorySystem,
		Event:    "identity_changed",
		Message:  "shopper identity toggled",
		Payload:  map[string]any{"has_identity": *req.HasIdentity},
	})
	c.JSON(http.StatusOK, gin.H{"has_identity": *req.HasIdentity})
}
