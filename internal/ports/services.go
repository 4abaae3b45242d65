package ports

import (
	"time"

	"github.com/jsamuelsen11/clipdate/internal/domain/date"
)

// Transcoder turns clipboard text into a date and a date back into text.
// Implemented by *date.Transcoder; consumed by the watcher.
type Transcoder interface {
	// Parse returns the date in s, or ok == false when s holds no date.
	Parse(s string) (d date.Date, ok bool)

	// Format renders d in the output layout.
	Format(d date.Date) string
}

// WatcherStatus exposes a point-in-time view of the watch loop.
// Implemented by the application layer; read by the ops status handler.
type WatcherStatus interface {
	Status() WatchStatus
}

// WatchStatus is a snapshot of watch loop counters and state.
type WatchStatus struct {
	Running      bool
	StartedAt    time.Time
	LastTickAt   time.Time
	LastChangeAt time.Time
	Ticks        int64
	Changes      int64
	Rewrites     int64
	LastError    error
}
