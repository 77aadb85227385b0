package logfox

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// STATE

// State is a complete logging configuration: a minimum level, excluded namespaces,
// stdout rendering options, and an ordered list of [Sink]s.
//
// All operations on a State, including every logging call, are serialized by one mutex.
// A message is filtered, written to stdout and passed to every sink before the next operation begins,
// so messages are totally ordered, and sinks see them in the order they acquire the lock.
//
// A panic while the lock is held (typically from a sink) poisons the State:
// the panic continues to the caller, and every later operation panics with an error whose cause is [ErrPoisoned].
type State struct {
	mu       sync.Mutex
	poisoned bool

	id  uuid.UUID
	cfg config
}

type config struct {
	// filtering
	min     Level
	exclude [][]string

	// routing
	stdout    bool
	sinks     []Sink
	selfTrace bool

	// initPending defers the "Initialized logger" trace until self tracing is enabled
	initPending bool

	// stdout rendering
	w          io.Writer
	wmu        *sync.Mutex
	useColors  bool
	timeFormat string
	colors     map[string]pen

	clock func() time.Time
}

// the namespace for messages a State logs about itself
const selfNamespace = "logfox"

// NewState returns a State with default configuration, independent of [Default].
// See [New] for the defaults.
func NewState() *State {
	return New().State()
}

// ID identifies the State; it is fixed when the State is constructed.
func (s *State) ID() uuid.UUID {
	return s.id
}

// with runs fn holding the State's lock.
// If fn does not return normally, the State is poisoned before the lock is released.
func (s *State) with(fn func(c *config)) {
	s.mu.Lock()
	if s.poisoned {
		s.mu.Unlock()
		panic(poisoned(s))
	}

	var ok bool
	defer func() {
		if !ok {
			s.poisoned = true
		}
		s.mu.Unlock()
	}()

	fn(&s.cfg)
	ok = true
}

// Log is the entry point for a message.
// The origin may be nil.
func (s *State) Log(namespace string, level Level, text string, origin *Origin) {
	s.with(func(c *config) {
		c.dispatch(&Message{
			Namespace: namespace,
			Level:     level,
			Text:      text,
			Origin:    origin,
		})
	})
}

// Level returns the minimum level.
func (s *State) Level() (level Level) {
	s.with(func(c *config) {
		level = c.min
	})
	return
}

// Enabled reports whether a message at the given level passes the minimum level.
// Namespace exclusion is not considered.
func (s *State) Enabled(level Level) bool {
	return level <= s.Level()
}

// SetLevel sets the minimum level.
// Messages logged after SetLevel returns are filtered against the new level.
func (s *State) SetLevel(level Level) {
	s.with(func(c *config) {
		c.min = level
		c.trace("Set filter level: %s", level)
	})
}

// AddSink appends a sink. Sinks are never removed.
// A nil sink is ignored.
func (s *State) AddSink(sink Sink) {
	if sink == nil {
		return
	}
	s.with(func(c *config) {
		c.trace("New sink added")
		c.sinks = append(c.sinks, sink)
	})
}

// SetTimeFormat sets the [time.Time.Format] layout of the time segment in stdout lines.
// An empty layout removes the time segment.
func (s *State) SetTimeFormat(layout string) {
	s.with(func(c *config) {
		c.timeFormat = layout
		c.trace("Set time format: %q", layout)
	})
}

// ExcludeNamespace drops every message whose namespace has the given prefix (see [HasPrefix]),
// regardless of level.
func (s *State) ExcludeNamespace(prefix string) {
	s.with(func(c *config) {
		c.exclude = append(c.exclude, Segments(prefix))
		c.trace("Excluded namespace %q", prefix)
	})
}

// SetNamespaceColor sets the color of the namespace segment in stdout lines,
// for messages whose top-level namespace segment is name.
// The color is a description like "bright magenta"; see [Config.Color].
func (s *State) SetNamespaceColor(name string, color string) {
	s.with(func(c *config) {
		if c.colors == nil {
			c.colors = make(map[string]pen)
		}
		c.colors[name] = newPen(color)
		c.trace("Set namespace %q to color %q", name, color)
	})
}

// SetStdout toggles stdout lines. Sinks are unaffected.
func (s *State) SetStdout(enabled bool) {
	s.with(func(c *config) {
		c.stdout = enabled
		c.trace("Stdout enabled: %t", enabled)
	})
}

// EnableSelfTrace turns on tracing of configuration changes, and sets the minimum level to [LevelTrace].
// Traces are logged at [LevelTrace] in the namespace "logfox".
func (s *State) EnableSelfTrace() {
	s.with(func(c *config) {
		c.selfTrace = true
		c.min = LevelTrace
		if c.initPending {
			c.initPending = false
			c.trace("Initialized logger %s", s.id)
		}
		c.trace("Set filter level: %s", LevelTrace)
	})
}

// clearSinks removes all sinks; it exists for tests
func (s *State) clearSinks() {
	s.with(func(c *config) {
		c.trace("All sinks removed")
		c.sinks = nil
	})
}

// trace dispatches a message about the State itself.
// It is only called by configuration operations, never by dispatch, so it cannot recurse.
func (c *config) trace(f string, args ...any) {
	if !c.selfTrace {
		return
	}
	c.dispatch(&Message{
		Namespace: selfNamespace,
		Level:     LevelTrace,
		Text:      fmt.Sprintf(f, args...),
	})
}

// DEFAULT STATE

var (
	std   atomic.Pointer[State]
	stdMu sync.Mutex
)

// Default returns the process-wide State, constructing it on first use.
// Concurrent first calls construct exactly one State; later calls never reset it.
func Default() *State {
	if s := std.Load(); s != nil {
		return s
	}

	stdMu.Lock()
	defer stdMu.Unlock()

	if s := std.Load(); s != nil {
		return s
	}

	// built before anything could enable self tracing
	s := NewState()
	s.cfg.initPending = true
	std.Store(s)
	return s
}

// SetDefault replaces the process-wide State, returning the previous one (possibly nil).
// After SetDefault(nil), the next call to [Default] constructs a fresh State.
func SetDefault(s *State) *State {
	stdMu.Lock()
	defer stdMu.Unlock()

	return std.Swap(s)
}

// Log logs to the [Default] State.
func Log(namespace string, level Level, text string, origin *Origin) {
	Default().Log(namespace, level, text, origin)
}

// SetLevel calls [State.SetLevel] on the [Default] State.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// AddSink calls [State.AddSink] on the [Default] State.
func AddSink(sink Sink) {
	Default().AddSink(sink)
}

// SetTimeFormat calls [State.SetTimeFormat] on the [Default] State.
func SetTimeFormat(layout string) {
	Default().SetTimeFormat(layout)
}

// ExcludeNamespace calls [State.ExcludeNamespace] on the [Default] State.
func ExcludeNamespace(prefix string) {
	Default().ExcludeNamespace(prefix)
}

// SetNamespaceColor calls [State.SetNamespaceColor] on the [Default] State.
func SetNamespaceColor(name string, color string) {
	Default().SetNamespaceColor(name, color)
}

// SetStdout calls [State.SetStdout] on the [Default] State.
func SetStdout(enabled bool) {
	Default().SetStdout(enabled)
}

// EnableSelfTrace calls [State.EnableSelfTrace] on the [Default] State.
func EnableSelfTrace() {
	Default().EnableSelfTrace()
}
