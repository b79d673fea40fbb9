// Package telemetry records one-shot feature-usage markers. A marker is
// counted the first time it is logged in a process and deduplicated by name
// afterwards, so call sites can report "this feature was used" without
// guarding against repeat calls themselves.
package telemetry

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var (
	mu     sync.Mutex
	marked map[string]struct{}

	// sessionID ties every marker emitted by this process together.
	sessionID = uuid.NewString()
)

// LogOnce records marker the first time it is seen in this process and emits
// it through slog. Later calls with the same marker are no-ops. Safe for
// concurrent use.
func LogOnce(marker string) {
	mu.Lock()
	defer mu.Unlock()

	if marked == nil {
		marked = make(map[string]struct{})
	}
	if _, seen := marked[marker]; seen {
		return
	}
	marked[marker] = struct{}{}
	slog.Debug("api usage", "marker", marker, "session", sessionID)
}

// Count reports how many times marker has been recorded: 0 or 1.
func Count(marker string) int {
	mu.Lock()
	defer mu.Unlock()

	if _, seen := marked[marker]; seen {
		return 1
	}
	return 0
}

// SessionID returns the per-process identifier attached to emitted markers.
func SessionID() string {
	return sessionID
}

// Reset clears all recorded markers. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	marked = nil
}
