package logfox

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

var testTime = time.Date(2022, 10, 18, 22, 12, 8, 0, time.UTC)

func testClock() time.Time {
	return testTime
}

// recordSink keeps copies of received messages
type recordSink struct {
	mu    sync.Mutex
	msgs  []Message
	times []time.Time
}

func (rs *recordSink) Receive(t time.Time, m *Message) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.msgs = append(rs.msgs, *m)
	rs.times = append(rs.times, t)
}

func (rs *recordSink) len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.msgs)
}

func (rs *recordSink) last() Message {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if len(rs.msgs) == 0 {
		return Message{}
	}
	return rs.msgs[len(rs.msgs)-1]
}

// testState returns a State writing uncolored lines to a buffer, with a fixed clock and one recording sink.
// The want function checks the buffer holds a substring, then clears it; want("") checks the buffer is empty.
func testState(t *testing.T, cfg *Config) (*State, *recordSink, func(string)) {
	var b bytes.Buffer
	rs := new(recordSink)

	s := cfg.
		Writer(&b).
		Colors(false).
		Clock(testClock).
		Sink(rs).
		State()

	want := func(want string) {
		t.Helper()
		if want == "" && b.Len() > 0 {
			t.Errorf("\n\texpected no output\n\tin %q", b.String())
		}
		if !strings.Contains(b.String(), want) {
			t.Errorf("\n\texpected %q\n\tin %q", want, b.String())
		}
		b.Reset()
	}

	return s, rs, want
}

// swapDefault installs s as the Default State for the duration of the test
func swapDefault(t *testing.T, s *State) {
	prev := SetDefault(s)
	t.Cleanup(func() {
		SetDefault(prev)
	})
}

// mustPanic returns the recovered value of fn's panic, failing the test if fn does not panic
func mustPanic(t *testing.T, fn func()) (r any) {
	t.Helper()
	defer func() {
		r = recover()
		if r == nil {
			t.Errorf("expected panic")
		}
	}()
	fn()
	return nil
}
