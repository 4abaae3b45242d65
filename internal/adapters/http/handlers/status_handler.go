package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/clipdate/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clipdate/internal/ports"
)

// StatusHandler serves the watch loop snapshot.
type StatusHandler struct {
	watcher ports.WatcherStatus
	now     func() time.Time
}

// NewStatusHandler creates a StatusHandler reading from watcher.
func NewStatusHandler(watcher ports.WatcherStatus) *StatusHandler {
	return &StatusHandler{watcher: watcher, now: time.Now}
}

// Status handles GET /status.
func (h *StatusHandler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToStatusResponse(h.watcher.Status(), h.now()))
}
