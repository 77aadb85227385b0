package logfox

import "strconv"

// Message is one logging call, as seen by a [Sink].
// A Message is only valid for the duration of [Sink.Receive]; sinks must not retain or modify it.
type Message struct {
	Namespace string
	Level     Level
	Text      string

	// Origin is nil when no call site was captured.
	Origin *Origin
}

// Origin locates the call site of a message.
type Origin struct {
	File   string
	Line   int
	Column int
}

// String renders file:line:column, dropping a zero column.
func (o Origin) String() string {
	s := o.File + ":" + strconv.Itoa(o.Line)
	if o.Column > 0 {
		s += ":" + strconv.Itoa(o.Column)
	}
	return s
}
