package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"k2demo/models"
)

// UCPProfile serves GET /.well-known/ucp, the capability profile a shopping
// agent reads before talking to the commerce endpoints.
func (hb *HandlerBundle) UCPProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ucp": models.DefaultUCPMeta(),
		"merchant": gin.H{
			"name":     "Jarir Bookstore (Demo)",
			"country":  "SA",
			"currency": "SAR",
		},
		"payment": gin.H{
			"methods": []string{"mada"},
		},
		"endpoints": gin.H{
			"search":            "/api/products/search",
			"product":           "/api/products/{id}",
			"checkout_sessions": "/api/checkout/sessions",
		},
	})
}
