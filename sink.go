package logfox

import (
	"io"
	"strings"
	"sync"
	"time"
)

// Sink receives every eligible message handled by a [State], after the stdout line is written.
//
// A State invokes its sinks one at a time, in registration order, while holding its lock.
// Receive must not log to the same State; doing so deadlocks.
// A panic in Receive propagates to the logging caller and poisons the State (see [ErrPoisoned]);
// wrap a sink with [Recover] to contain it.
type Sink interface {
	Receive(t time.Time, m *Message)
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(t time.Time, m *Message)

func (fn SinkFunc) Receive(t time.Time, m *Message) {
	fn(t, m)
}

// RECOVER

// Recover wraps a sink so that a panic in Receive is recovered and passed to report as a [*SinkPanic].
// Other sinks, and the logging caller, continue normally.
// A nil report discards the panic.
func Recover(s Sink, report func(error)) Sink {
	return &recoverSink{s, report}
}

type recoverSink struct {
	Sink
	report func(error)
}

func (rs *recoverSink) Receive(t time.Time, m *Message) {
	defer func() {
		if r := recover(); r != nil && rs.report != nil {
			rs.report(&SinkPanic{Value: r, Msg: *m})
		}
	}()
	rs.Sink.Receive(t, m)
}

// WRITER

// WriterSink returns a [Sink] writing plain lines, without colors, to w:
//
//	2006-01-02T15:04:05.000Z07:00 [namespace] LEVL text
//
// Write errors are dropped. Lines are written whole, guarded by a mutex owned by the sink.
func WriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (ws *writerSink) Receive(t time.Time, m *Message) {
	b := newBuffer()
	defer b.free()

	b.text = appendTimeRFC3339Millis(b.text, t)
	b.WriteString(" [")
	b.WriteString(m.Namespace)
	b.WriteString("] ")
	b.WriteString(m.Level.String())
	b.writeByte(' ')
	b.WriteString(strings.TrimRight(m.Text, "\n"))
	b.writeByte('\n')

	ws.mu.Lock()
	ws.w.Write(b.text)
	ws.mu.Unlock()
}
