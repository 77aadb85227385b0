package logfox

import (
	"testing"

	"golang.org/x/exp/slog"
)

func TestLevelOrder(t *testing.T) {
	order := []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
	tags := []string{"ERRR", "WARN", "INFO", "DBUG", "TRCE"}

	for i, level := range order {
		if level.String() != tags[i] {
			t.Errorf("want %s, got %s", tags[i], level)
		}
		if len(level.String()) != 4 {
			t.Errorf("%s is not 4 wide", level)
		}
		if i > 0 && !(order[i-1] < level) {
			t.Errorf("%s is not less than %s", order[i-1], level)
		}
	}

	if s := Level(9).String(); s != "!BAD" {
		t.Errorf("out of range level: %s", s)
	}
}

func TestParseLevel(t *testing.T) {
	for _, test := range []struct {
		s    string
		want Level
	}{
		{"ERRR", LevelError},
		{"error", LevelError},
		{"Warning", LevelWarn},
		{" warn ", LevelWarn},
		{"INFO", LevelInfo},
		{"dbug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"trace", LevelTrace},
		{"TRCE", LevelTrace},
	} {
		got, err := ParseLevel(test.s)
		if err != nil {
			t.Errorf("%q: %v", test.s, err)
		}
		if got != test.want {
			t.Errorf("%q: want %s, got %s", test.s, test.want, got)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error")
	}
}

func TestSlogLevels(t *testing.T) {
	for level := LevelError; level <= LevelTrace; level++ {
		if got := FromSlog(level.SlogLevel()); got != level {
			t.Errorf("%s: round trip gave %s", level, got)
		}
	}

	for _, test := range []struct {
		slevel slog.Level
		want   Level
	}{
		{slog.LevelError + 4, LevelError},
		{slog.LevelError, LevelError},
		{slog.LevelWarn + 1, LevelWarn},
		{slog.LevelInfo + 2, LevelInfo},
		{slog.LevelInfo, LevelInfo},
		{slog.LevelDebug, LevelDebug},
		{slog.LevelDebug - 1, LevelTrace},
		{slog.LevelDebug - 8, LevelTrace},
	} {
		if got := FromSlog(test.slevel); got != test.want {
			t.Errorf("%s: want %s, got %s", test.slevel, test.want, got)
		}
	}
}
