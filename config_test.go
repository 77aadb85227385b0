package logfox

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestConfigDefaults(t *testing.T) {
	s := New().Stdout(false).State()
	c := &s.cfg

	if c.min != LevelTrace {
		t.Errorf("level: %s", c.min)
	}
	if c.timeFormat != "" || len(c.exclude) != 0 || len(c.sinks) != 0 || c.selfTrace {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.colors[selfNamespace] != newPen("bright yellow") {
		t.Errorf("logfox color: %q", c.colors[selfNamespace])
	}
	if New().State().cfg.w != nil {
		t.Errorf("default writer is not stdout")
	}
	if !New().State().cfg.stdout {
		t.Errorf("stdout off by default")
	}
}

func TestConfigReuse(t *testing.T) {
	cfg := New().Exclude("a").Color("a", "red")
	s1, rs1, _ := testState(t, cfg)

	cfg.Exclude("b").Color("a", "blue").Level(LevelError)
	s2, rs2, _ := testState(t, cfg)

	if s1.ID() == s2.ID() {
		t.Errorf("states share an ID")
	}

	s1.Log("b", LevelInfo, "x", nil)
	s2.Log("b", LevelInfo, "x", nil)

	if rs1.len() != 1 || rs2.len() != 0 {
		t.Errorf("later config changes leaked into earlier state")
	}
	if s1.cfg.colors["a"] != newPen("red") {
		t.Errorf("color leaked: %q", s1.cfg.colors["a"])
	}
}

func TestConfigClock(t *testing.T) {
	var ticks int
	clock := func() time.Time {
		ticks++
		return testTime.Add(time.Duration(ticks) * time.Second)
	}

	s, rs, want := testState(t, New().TimeFormat("15:04:05"))
	s.cfg.clock = clock

	s.Log("clock", LevelInfo, "tick", nil)
	want("22:12:09 [clock] INFO tick")

	// one reading per message, shared by stdout and sinks
	if ticks != 1 || !rs.times[0].Equal(testTime.Add(time.Second)) {
		t.Errorf("clock read %d times", ticks)
	}

	s.Log("clock", LevelTrace, "tock", nil)
	s.SetLevel(LevelError)
	s.Log("clock", LevelTrace, "filtered", nil)
	if ticks != 2 {
		t.Errorf("clock read %d times", ticks)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "warning")
	t.Setenv(EnvTime, "2006")
	t.Setenv(EnvExclude, "noisy, chatty::bits,")
	t.Setenv(EnvStdout, "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}

	s, rs, want := testState(t, cfg)

	s.Log("app", LevelInfo, "filtered", nil)
	s.Log("noisy", LevelError, "excluded", nil)
	s.Log("chatty::bits::x", LevelError, "excluded", nil)
	s.Log("chatty", LevelWarn, "kept", nil)

	want("2022 [chatty] WARN kept")
	if rs.len() != 1 {
		t.Errorf("want 1 message, got %d", rs.len())
	}
}

func TestFromEnvErrors(t *testing.T) {
	t.Setenv(EnvLevel, "loud")
	t.Setenv(EnvStdout, "maybe")
	t.Setenv(EnvTime, "15:04")

	cfg, err := FromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if cfg == nil {
		t.Fatal("expected config with error")
	}

	// the first failure is reported, and later variables still apply
	if msg := errors.Cause(err).Error(); msg != `logfox: unknown level "loud"` {
		t.Errorf("cause: %s", msg)
	}
	if cfg.min != LevelTrace || !cfg.stdout || cfg.timeFormat != "15:04" {
		t.Errorf("config: %+v", cfg)
	}
}

func TestConfigZero(t *testing.T) {
	var cfg Config
	cfg.Color("app", "red")

	rs := new(recordSink)
	s := cfg.Sink(rs).State()

	s.Log("app", LevelInfo, "filtered", nil)
	s.Log("app", LevelError, "kept", nil)

	if rs.len() != 1 || rs.last().Text != "kept" {
		t.Errorf("zero config: %v", rs.msgs)
	}
	if rs.times[0].IsZero() {
		t.Errorf("zero config has no clock")
	}
	if s.cfg.colors["app"] != newPen("red") {
		t.Errorf("zero config color: %q", s.cfg.colors["app"])
	}
}
