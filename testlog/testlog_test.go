package testlog

import (
	"fmt"
	"testing"

	"github.com/AndrewHarrisSPU/logfox"
)

func TestSubstrings(t *testing.T) {
	sink, want := Substrings(t)
	log := logfox.New().Stdout(false).Sink(sink).State().Named("testlog")

	log.Info("should appear")
	want(`"msg":"should appear"`)

	log.Infof("a number: %d", 42)
	want(`"msg":"a number: 42"`)

	log.Warn("where")
	want(`"ns":"testlog"`)

	log.Trace("trace")
	want(`"level":"DEBUG-4"`)

	log.Error("origin")
	want("testlog_test.go:")
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	log := logfox.New().Stdout(false).Sink(&rec).State().Named("testlog::rec")

	log.Info("one")
	log.Debugf("two %d", 2)

	if rec.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", rec.Len())
	}

	es := rec.Entries()
	if es[0].Text != "one" || es[1].Text != "two 2" {
		t.Errorf("texts: %q", rec.Texts())
	}
	if es[1].Level != logfox.LevelDebug {
		t.Errorf("want %s, got %s", logfox.LevelDebug, es[1].Level)
	}
	if es[0].Namespace != "testlog::rec" {
		t.Errorf("namespace: %s", es[0].Namespace)
	}
	if es[0].Origin == nil || es[0].Origin.Line == 0 {
		t.Errorf("missing origin")
	}
	if es[1].Time.Before(es[0].Time) {
		t.Errorf("times out of order")
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("reset: %d entries remain", rec.Len())
	}
}

// fakeTB records Logf and Errorf calls
type fakeTB struct {
	testing.TB
	logs, errs []string
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Logf(format string, args ...any) {
	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

func (f *fakeTB) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func TestTB(t *testing.T) {
	fake := &fakeTB{TB: t}
	s := logfox.New().Stdout(false).Sink(TB(fake)).State()

	s.Log("tb", logfox.LevelInfo, "logged", nil)
	s.Log("tb", logfox.LevelError, "failed", &logfox.Origin{File: "x.go", Line: 7})

	if len(fake.logs) != 1 || fake.logs[0] != "[tb] INFO logged" {
		t.Errorf("logs: %q", fake.logs)
	}
	if len(fake.errs) != 1 || fake.errs[0] != "[tb] ERRR failed (x.go:7)" {
		t.Errorf("errs: %q", fake.errs)
	}
}
