// Package history keeps the bounded, insertion-ordered buffer of searches
// made during one interactive session. It is owned by the session and dies
// with it; nothing here persists.
package history

import (
	"strings"
	"time"

	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// DefaultCapacity bounds the buffer when no size is configured.
const DefaultCapacity = 10

// Entry is one successful current-weather lookup: the city as the user typed
// it (trimmed only), when the fetch happened, and the full payload so the
// entry can be re-rendered on demand.
type Entry struct {
	City      string                 `json:"city"`
	Timestamp time.Time              `json:"timestamp"`
	Current   weather.CurrentWeather `json:"current"`
}

// History is a capped FIFO buffer of search entries. One writer, one reader,
// never interleaved; no locking needed.
type History struct {
	entries  []Entry
	capacity int
}

// New creates a History holding at most capacity entries. capacity <= 0
// falls back to DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Record appends an entry, evicting from the front while over capacity.
func (h *History) Record(e Entry) {
	e.City = strings.TrimSpace(e.City)
	h.entries = append(h.entries, e)
	if over := len(h.entries) - h.capacity; over > 0 {
		h.entries = h.entries[over:]
	}
}

// LastN returns up to n entries most-recent-first. The result is a copy;
// mutating it does not touch the buffer.
func (h *History) LastN(n int) []Entry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

// Latest returns the most recently recorded entry, if any.
func (h *History) Latest() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len reports how many entries the buffer currently holds.
func (h *History) Len() int {
	return len(h.entries)
}
