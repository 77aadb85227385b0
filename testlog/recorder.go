package testlog

import (
	"sync"
	"time"

	"github.com/AndrewHarrisSPU/logfox"
)

// Recorder is a [logfox.Sink] that keeps a copy of every message it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Entry is one received message.
type Entry struct {
	Time time.Time
	logfox.Message
}

// Receive implements [logfox.Sink].
func (r *Recorder) Receive(t time.Time, m *logfox.Message) {
	e := Entry{t, *m}
	if m.Origin != nil {
		o := *m.Origin
		e.Origin = &o
	}

	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

// Entries returns a copy of the received entries, in order of receipt.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.entries...)
}

// Texts returns the text of each received message.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	texts := make([]string, len(r.entries))
	for i, e := range r.entries {
		texts[i] = e.Text
	}
	return texts
}

// Len returns the number of received messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Reset forgets all received messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
