package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"k2demo/models"
	"k2demo/services/checkout"
	"k2demo/services/demolog"
	"k2demo/utils"
)

func writeCheckoutError(c *gin.Context, err error) {
	var ce *checkout.Error
	if errors.As(err, &ce) {
		utils.JSONError(c, ce.Status, ce.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}

// CreateCheckoutSession serves POST /api/checkout/sessions.
func (hb *HandlerBundle) CreateCheckoutSession(c *gin.Context) {
	var req models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, warnings, err := hb.Checkout.Create(req.Items)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	hb.Bus.Publish(demolog.Emit{
		Category: models.LogCategoryCheckout,
		Event:    "session_created",
		Message:  "checkout session created",
		Payload: map[string]any{
			"session_id": session.ID,
			"line_items": len(session.LineItems),
			"total":      session.Totals.Total,
			"warnings":   warnings,
		},
	})

	if warnings == nil {
		warnings = []string{}
	}
	c.JSON(http.StatusCreated, gin.H{
		"session":        session,
		"missing_fields": session.MissingFields(),
		"warnings":       warnings,
	})
}

// GetCheckoutSession serves GET /api/checkout/sessions/:id. Reading drives
// the lazy completion flip and expiry.
func (hb *HandlerBundle) GetCheckoutSession(c *gin.Context) {
	session, err := hb.Checkout.Get(c.Param("id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":        session,
		"missing_fields": session.MissingFields(),
	})
}

// UpdateCheckoutSession serves PATCH /api/checkout/sessions/:id.
func (hb *HandlerBundle) UpdateCheckoutSession(c *gin.Context) {
	var req models.UpdateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := hb.Checkout.Update(c.Param("id"), req)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	hb.Bus.Publish(demolog.Emit{
		Category: models.LogCategoryCheckout,
		Event:    "session_updated",
		Message:  "checkout session updated",
		Payload: map[string]any{
			"session_id":     session.ID,
			"status":         session.Status,
			"shipping_fee":   session.Shipping.Fee,
			"missing_fields": session.MissingFields(),
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"session":        session,
		"missing_fields": session.MissingFields(),
	})
}

// CompleteCheckoutSession serves POST /api/checkout/sessions/:id/complete.
// Completion is asynchronous in demo terms: the caller gets 202 and polls the
// session until the flip is observed.
func (hb *HandlerBundle) CompleteCheckoutSession(c *gin.Context) {
	var req models.CompleteCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, started, err := hb.Checkout.Complete(c.Param("id"), req.PaymentMethod)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	message := "completion already in progress"
	if started {
		message = "completion started"
		hb.Bus.Publish(demolog.Emit{
			Category: models.LogCategoryPayment,
			Event:    "completion_started",
			Message:  "payment accepted; completion in progress",
			Payload: map[string]any{
				"session_id":     session.ID,
				"payment_method": req.PaymentMethod,
			},
		})
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":   session.Status,
		"message":  message,
		"poll_url": "/api/checkout/sessions/" + session.ID,
		"session":  session,
	})
}
