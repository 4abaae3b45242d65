// Package dto provides the JSON bodies served by the ops HTTP adapter and
// RFC 9457 Problem Details error responses.
package dto

import (
	"time"

	"github.com/jsamuelsen11/clipdate/internal/ports"
)

// Health status values.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// checker name to "ok" or its failure message.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ToReadinessResponse converts health check results into a readiness body.
// Ready reports whether every check passed.
func ToReadinessResponse(results map[string]error) (resp ReadinessResponse, ready bool) {
	checks := make(map[string]string, len(results))
	ready = true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			ready = false
		} else {
			checks[name] = StatusOK
		}
	}

	resp = ReadinessResponse{Status: StatusReady, Checks: checks}
	if !ready {
		resp.Status = StatusNotReady
	}
	return resp, ready
}

// StatusResponse is the body of GET /status. It never carries clipboard
// content. Time fields are RFC 3339 and omitted until first set.
type StatusResponse struct {
	Running      bool   `json:"running"`
	StartedAt    string `json:"started_at,omitempty"`
	LastTickAt   string `json:"last_tick_at,omitempty"`
	LastChangeAt string `json:"last_change_at,omitempty"`
	Uptime       string `json:"uptime,omitempty"`
	Ticks        int64  `json:"ticks"`
	Changes      int64  `json:"changes"`
	Rewrites     int64  `json:"rewrites"`
	LastError    string `json:"last_error,omitempty"`
}

// ToStatusResponse converts a watcher snapshot to a response DTO. Uptime is
// measured against now and reported only while the loop is running.
func ToStatusResponse(s ports.WatchStatus, now time.Time) StatusResponse {
	resp := StatusResponse{
		Running:      s.Running,
		StartedAt:    formatTime(s.StartedAt),
		LastTickAt:   formatTime(s.LastTickAt),
		LastChangeAt: formatTime(s.LastChangeAt),
		Ticks:        s.Ticks,
		Changes:      s.Changes,
		Rewrites:     s.Rewrites,
	}
	if s.Running && !s.StartedAt.IsZero() {
		resp.Uptime = now.Sub(s.StartedAt).Round(time.Second).String()
	}
	if s.LastError != nil {
		resp.LastError = s.LastError.Error()
	}
	return resp
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
