package logfox

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/exp/slog"
)

// SLOG HANDLER

// Handler is a [slog.Handler] that logs records to a [State].
//
//   - a record's level is mapped with [FromSlog]
//   - groups opened with WithGroup extend the namespace, one segment per group
//   - attributes are appended to the message text as " key=value"
//   - the record's PC, if any, becomes the message [Origin]
//
// A Handler must not log to a State that forwards to the same Handler through [SlogSink].
type Handler struct {
	s     *State
	ns    string
	attrs string
}

// NewHandler returns a Handler logging to s under namespace.
// A nil s logs to the [Default] State.
func NewHandler(s *State, namespace string) *Handler {
	return &Handler{s: s, ns: namespace}
}

func (h *Handler) state() *State {
	if h.s == nil {
		return Default()
	}
	return h.s
}

// See [slog.Handler.Enabled].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.state().Enabled(FromSlog(level))
}

// See [slog.Handler.WithAttrs].
func (h *Handler) WithAttrs(as []slog.Attr) slog.Handler {
	b := newBuffer()
	defer b.free()

	for _, a := range as {
		appendAttr(b, "", a)
	}

	h2 := *h
	h2.attrs = h.attrs + string(b.text)
	return &h2
}

// See [slog.Handler.WithGroup].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	if h.ns == "" {
		h2.ns = name
	} else {
		h2.ns = h.ns + "::" + name
	}
	return &h2
}

// See [slog.Handler.Handle].
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	b := newBuffer()
	defer b.free()

	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(b, "", a)
		return true
	})

	var origin *Origin
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			origin = &Origin{File: frame.File, Line: frame.Line}
		}
	}

	h.state().Log(h.ns, FromSlog(r.Level), string(b.text), origin)
	return nil
}

func appendAttr(b *buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}

	b.writeByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.writeByte('=')
	b.WriteString(a.Value.String())
}

// SLOG SINK

// SlogSink returns a [Sink] that passes each message to h as a [slog.Record].
// The record carries the message time, level (see [Level.SlogLevel]) and text,
// plus an "ns" attribute, and an "origin" attribute when the origin is known.
// Errors returned by h are dropped.
func SlogSink(h slog.Handler) Sink {
	return slogSink{h}
}

type slogSink struct {
	h slog.Handler
}

func (ss slogSink) Receive(t time.Time, m *Message) {
	ctx := context.Background()
	level := m.Level.SlogLevel()
	if !ss.h.Enabled(ctx, level) {
		return
	}

	r := slog.NewRecord(t, level, m.Text, 0)
	r.AddAttrs(slog.String("ns", m.Namespace))
	if m.Origin != nil {
		r.AddAttrs(slog.String("origin", m.Origin.String()))
	}
	ss.h.Handle(ctx, r)
}
