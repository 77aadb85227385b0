package testlog

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/AndrewHarrisSPU/logfox"
	"golang.org/x/exp/slog"
)

// Substrings returns a [logfox.Sink] and a "want" function.
//
// Messages received by the sink are written to a buffer, one JSON object per line.
// Calling "want" tests whether the buffer contains the given string.
// If it does not, t.Errorf is called.
// Calling want clears the buffer.
//
// Lines carry the level, message, namespace and origin, but no time.
func Substrings(t testing.TB) (sink logfox.Sink, want func(string)) {
	var b syncBuffer

	want = func(wantString string) {
		t.Helper()
		if got := b.String(); !strings.Contains(got, wantString) {
			t.Errorf("\n\texpected %s\n\tin %s", wantString, got)
		}
		b.Reset()
	}

	h := slog.NewJSONHandler(&b, &slog.HandlerOptions{
		Level:       slog.LevelDebug - 4,
		ReplaceAttr: noTime,
	})

	return logfox.SlogSink(h), want
}

func noTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.String()
}

func (sb *syncBuffer) Reset() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.b.Reset()
}
