package logfox

import (
	"sync"
	"time"
)

// buffer is a pooled byte slice used to build one line at a time.
type buffer struct {
	text []byte
}

var bpool = sync.Pool{
	New: func() any {
		return &buffer{
			text: make([]byte, 0, 1024),
		}
	},
}

func newBuffer() *buffer {
	return bpool.Get().(*buffer)
}

// buffers that grew past maxBufferSize are left for the collector
func (b *buffer) free() {
	const maxBufferSize = 16 << 10

	if cap(b.text) < maxBufferSize {
		b.text = b.text[:0]
		bpool.Put(b)
	}
}

func (b *buffer) WriteString(s string) {
	b.text = append(b.text, s...)
}

func (b *buffer) writeByte(c byte) {
	b.text = append(b.text, c)
}

func (b *buffer) pad(n int) {
	for i := 0; i < n; i++ {
		b.text = append(b.text, ' ')
	}
}

// BELOW:
// is copy-pasta from Go library code.
// licensing applies.

// Cheap integer to fixed-width decimal ASCII. Give a negative width to avoid zero-padding.
// Copied from log/log.go.
func itoa(buf *[]byte, i int, wid int) {
	// Assemble decimal in reverse order.
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

// This takes half the time of Time.AppendFormat.
func appendTimeRFC3339Millis(buf []byte, t time.Time) []byte {
	char := func(b byte) {
		buf = append(buf, b)
	}

	year, month, day := t.Date()
	itoa(&buf, year, 4)
	char('-')
	itoa(&buf, int(month), 2)
	char('-')
	itoa(&buf, day, 2)
	char('T')
	hour, min, sec := t.Clock()
	itoa(&buf, hour, 2)
	char(':')
	itoa(&buf, min, 2)
	char(':')
	itoa(&buf, sec, 2)
	ns := t.Nanosecond()
	char('.')
	itoa(&buf, ns/1e6, 3)
	_, offsetSeconds := t.Zone()
	if offsetSeconds == 0 {
		char('Z')
	} else {
		offsetMinutes := offsetSeconds / 60
		if offsetMinutes < 0 {
			char('-')
			offsetMinutes = -offsetMinutes
		} else {
			char('+')
		}
		itoa(&buf, offsetMinutes/60, 2)
		char(':')
		itoa(&buf, offsetMinutes%60, 2)
	}
	return buf
}
