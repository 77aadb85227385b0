package logfox

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CONFIG

// Config builds a [State].
//
// # Typical usage
//
// 1. The [New] function opens a new Config instance (or [FromEnv], which also reads the environment).
//
// 2. Next, zero or more Config methods are chained to set configuration fields.
// Defaults:
//   - [Config.Writer]: os.Stdout
//   - [Config.Colors]: true, when the writer is a terminal
//   - [Config.Level]: [LevelTrace]
//   - [Config.TimeFormat]: "" (no time segment)
//   - [Config.Exclude]: none
//   - [Config.Color]: "logfox" in "bright yellow", others white
//   - [Config.Sink]: none
//   - [Config.Stdout]: true
//   - [Config.SelfTrace]: off
//   - [Config.Clock]: time.Now
//
// 3. [Config.State] closes the chained invocation.
//
// A zero Config is usable: its State passes only [LevelError], to sinks alone.
type Config struct {
	// sink config
	w           io.Writer
	useStdMutex bool

	// filtering
	min     Level
	exclude []string

	// routing
	stdout    bool
	sinks     []Sink
	selfTrace bool

	// tty gadgets
	useColors  bool
	forceTTY   bool
	timeFormat string
	colors     map[string]string

	clock func() time.Time
}

// New opens a Config with default values.
func New() *Config {
	return &Config{
		useStdMutex: true,
		min:         LevelTrace,
		stdout:      true,
		useColors:   true,
		colors: map[string]string{
			selfNamespace: "bright yellow",
		},
		clock: time.Now,
	}
}

// Writer configures the destination of stdout lines, in place of os.Stdout.
func (cfg *Config) Writer(w io.Writer) *Config {
	cfg.w = w
	cfg.useStdMutex = false
	return cfg
}

// Colors toggles ANSI color encoding.
// Colors are only written when the writer is a terminal, or [Config.ForceTTY] is set.
func (cfg *Config) Colors(toggle bool) *Config {
	cfg.useColors = toggle
	return cfg
}

// ForceTTY treats the writer as a terminal, regardless of detection.
func (cfg *Config) ForceTTY() *Config {
	cfg.forceTTY = true
	return cfg
}

// Level sets the minimum level.
func (cfg *Config) Level(level Level) *Config {
	cfg.min = level
	return cfg
}

// TimeFormat sets a [time.Time.Format] layout for the time segment; "" omits it.
func (cfg *Config) TimeFormat(layout string) *Config {
	cfg.timeFormat = layout
	return cfg
}

// Exclude adds namespace prefixes to drop.
func (cfg *Config) Exclude(prefixes ...string) *Config {
	cfg.exclude = append(cfg.exclude, prefixes...)
	return cfg
}

// Color sets the color of namespaces with the top-level segment name.
//
// Colors are described with words:
//   - colors: black, red, green, yellow, blue, magenta, cyan, white
//   - "bg" / "fg" select whether following colors apply to background or foreground
//   - effects: bold (or bright), dim (or dark), italic, underline, blink
func (cfg *Config) Color(name string, color string) *Config {
	if cfg.colors == nil {
		cfg.colors = make(map[string]string)
	}
	cfg.colors[name] = color
	return cfg
}

// Sink appends sinks.
func (cfg *Config) Sink(sinks ...Sink) *Config {
	for _, s := range sinks {
		if s != nil {
			cfg.sinks = append(cfg.sinks, s)
		}
	}
	return cfg
}

// Stdout toggles stdout lines.
func (cfg *Config) Stdout(toggle bool) *Config {
	cfg.stdout = toggle
	return cfg
}

// SelfTrace turns on tracing of configuration changes, and sets the minimum level to [LevelTrace].
func (cfg *Config) SelfTrace() *Config {
	cfg.selfTrace = true
	cfg.min = LevelTrace
	return cfg
}

// Clock replaces time.Now as the source of message times.
func (cfg *Config) Clock(now func() time.Time) *Config {
	if now != nil {
		cfg.clock = now
	}
	return cfg
}

// State returns a new State.
// The Config may be reused; later changes to it do not affect the returned State.
func (cfg *Config) State() *State {
	s := &State{
		id: uuid.New(),
	}

	c := &s.cfg
	c.min = cfg.min
	c.stdout = cfg.stdout
	c.selfTrace = cfg.selfTrace
	c.timeFormat = cfg.timeFormat
	c.clock = cfg.clock
	if c.clock == nil {
		c.clock = time.Now
	}
	c.sinks = append([]Sink(nil), cfg.sinks...)

	for _, prefix := range cfg.exclude {
		c.exclude = append(c.exclude, Segments(prefix))
	}

	c.colors = make(map[string]pen, len(cfg.colors))
	for name, color := range cfg.colors {
		c.colors[name] = newPen(color)
	}

	var isTTY bool
	if cfg.useStdMutex || cfg.w == nil {
		isTTY = stdoutIsTerminal()
	} else {
		c.w = cfg.w
		c.wmu = new(sync.Mutex)
		isTTY = writerIsTerminal(cfg.w)
	}
	c.useColors = cfg.useColors && (cfg.forceTTY || isTTY)

	c.trace("Initialized logger %s", s.id)
	return s
}

// ENVIRONMENT

// Environment variables read by [FromEnv].
const (
	EnvLevel   = "LOGFOX_LEVEL"   // a level, as read by ParseLevel
	EnvTime    = "LOGFOX_TIME"    // a time layout
	EnvExclude = "LOGFOX_EXCLUDE" // comma-separated namespace prefixes
	EnvStdout  = "LOGFOX_STDOUT"  // a bool, as read by strconv.ParseBool
	EnvColors  = "LOGFOX_COLORS"  // a bool, as read by strconv.ParseBool
)

// FromEnv opens a Config with default values, then applies any LOGFOX_* environment variables that are set.
// The Config is returned along with the first error encountered; variables that fail to parse are skipped.
func FromEnv() (*Config, error) {
	cfg := New()
	var first error
	fail := func(err error) {
		if first == nil {
			first = err
		}
	}

	if s, set := os.LookupEnv(EnvLevel); set {
		if level, err := ParseLevel(s); err != nil {
			fail(errors.Wrap(err, EnvLevel))
		} else {
			cfg.Level(level)
		}
	}

	if s, set := os.LookupEnv(EnvTime); set {
		cfg.TimeFormat(s)
	}

	if s, set := os.LookupEnv(EnvExclude); set {
		for _, prefix := range strings.Split(s, ",") {
			if prefix = strings.TrimSpace(prefix); prefix != "" {
				cfg.Exclude(prefix)
			}
		}
	}

	if s, set := os.LookupEnv(EnvStdout); set {
		if toggle, err := strconv.ParseBool(s); err != nil {
			fail(errors.Wrap(err, EnvStdout))
		} else {
			cfg.Stdout(toggle)
		}
	}

	if s, set := os.LookupEnv(EnvColors); set {
		if toggle, err := strconv.ParseBool(s); err != nil {
			fail(errors.Wrap(err, EnvColors))
		} else {
			cfg.Colors(toggle)
		}
	}

	return cfg, first
}
