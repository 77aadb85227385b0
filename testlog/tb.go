package testlog

import (
	"testing"
	"time"

	"github.com/AndrewHarrisSPU/logfox"
)

// TB returns a [logfox.Sink] that passes each message to t.Log, so that log lines appear with test output.
// Messages at [logfox.LevelError] are passed to t.Error instead, failing the test.
//
// The sink must not receive messages after the test completes.
func TB(t testing.TB) logfox.Sink {
	return tbSink{t}
}

type tbSink struct {
	t testing.TB
}

func (s tbSink) Receive(_ time.Time, m *logfox.Message) {
	s.t.Helper()

	origin := ""
	if m.Origin != nil {
		origin = " (" + m.Origin.String() + ")"
	}

	if m.Level == logfox.LevelError {
		s.t.Errorf("[%s] %s %s%s", m.Namespace, m.Level, m.Text, origin)
		return
	}
	s.t.Logf("[%s] %s %s%s", m.Namespace, m.Level, m.Text, origin)
}
