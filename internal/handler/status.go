package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// FatalBanner remembers the last unexpected failure so the client can show it.
type FatalBanner struct {
	mu      sync.RWMutex
	message string
	at      time.Time
}

// Record replaces the banner message.
func (b *FatalBanner) Record(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = message
	b.at = time.Now().UTC()
}

// Message returns the current banner text, empty when nothing failed.
func (b *FatalBanner) Message() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.message
}

type statusResponse struct {
	Status  string     `json:"status"`
	Fatal   string     `json:"fatal,omitempty"`
	FatalAt *time.Time `json:"fatal_at,omitempty"`
}

// Status handles GET /api/status requests
//
//	@Summary	Fatal banner
//	@Tags		status
//	@Produce	json
//	@Success	200	{object}	statusResponse
//	@Router		/api/status [get]
func (b *FatalBanner) Status(c *gin.Context) {
	b.mu.RLock()
	resp := statusResponse{Status: "ok"}
	if b.message != "" {
		at := b.at
		resp.Status = "degraded"
		resp.Fatal = b.message
		resp.FatalAt = &at
	}
	b.mu.RUnlock()

	c.JSON(http.StatusOK, resp)
}

// Health handles GET /health requests
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
