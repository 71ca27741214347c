package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"k2demo/models"
	"k2demo/services/demolog"
	"k2demo/utils"
)

const keepaliveInterval = 30 * time.Second

// StreamLogs serves GET /api/demo/logs/stream as server-sent events. New
// subscribers first receive the replay buffer, then live events, with
// periodic keepalive comments so idle proxies keep the connection open.
func (hb *HandlerBundle) StreamLogs(c *gin.Context) {
	events, snapshot, unsubscribe := hb.Bus.Subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	for _, event := range snapshot {
		if err := sse.Encode(c.Writer, sse.Event{Event: "log", Data: event}); err != nil {
			return
		}
	}
	c.Writer.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			sse.Encode(w, sse.Event{Event: "log", Data: event})
			return true
		case <-keepalive.C:
			sse.Encode(w, sse.Event{Event: "keepalive", Data: "ok"})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// ListLogs serves GET /api/demo/logs with the current replay buffer.
func (hb *HandlerBundle) ListLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"session_id": hb.Bus.SessionID(),
		"events":     hb.Bus.Buffered(),
	})
}

// PublishLog serves POST /api/demo/logs so the UI layer can put its own
// events on the shared stream.
func (hb *HandlerBundle) PublishLog(c *gin.Context) {
	var req struct {
		Category models.LogCategory `json:"category"`
		Event    string             `json:"event"`
		Message  string             `json:"message"`
		Payload  map[string]any     `json:"payload"`
		Level    string             `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Event == "" {
		utils.JSONError(c, http.StatusBadRequest, "event name is required", "")
		return
	}
	if req.Category == "" {
		req.Category = models.LogCategoryUI
	}

	event := hb.Bus.Publish(demolog.Emit{
		Category: req.Category,
		Event:    req.Event,
		Message:  req.Message,
		Payload:  req.Payload,
		Level:    req.Level,
	})
	c.JSON(http.StatusCreated, event)
}

// ClearLogs serves POST /api/demo/logs/clear, resetting the buffer and
// rotating the demo session id.
func (hb *HandlerBundle) ClearLogs(c *gin.Context) {
	sessionID := hb.Bus.Clear()
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
}
