package logfox

import (
	"strings"
	"time"

	"golang.org/x/text/width"
)

// LINE RENDERING

// render writes one stdout line:
//
//	[time ][namespace] LEVL text
//
// Continuation lines of a multi-line text are indented to start under the first line's text.
func (c *config) render(b *buffer, now time.Time, m *Message, segs []string) {
	var header int

	// time
	if c.timeFormat != "" {
		ts := now.Format(c.timeFormat)
		c.pen(timePen).use(b)
		b.WriteString(ts)
		c.pen(timePen).drop(b)
		b.writeByte(' ')
		header += displayWidth(ts) + 1
	}

	// namespace
	p := c.pen(c.namespacePen(segs))
	link := c.useColors && m.Origin != nil
	if link {
		linkOpen(b, m.Origin)
	}
	p.use(b)
	b.writeByte('[')
	b.WriteString(m.Namespace)
	b.writeByte(']')
	p.drop(b)
	if link {
		linkClose(b)
	}
	header += displayWidth(m.Namespace) + 2

	// level
	b.writeByte(' ')
	c.pen(levelPen(m.Level)).use(b)
	b.WriteString(m.Level.String())
	c.pen(levelPen(m.Level)).drop(b)
	header += 5

	// text
	b.writeByte(' ')
	header++

	text := strings.TrimSuffix(m.Text, "\n")
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:i+1])
		b.pad(header)
		text = text[i+1:]
	}

	b.writeByte('\n')
}

// pen returns p, or no pen when colors are off
func (c *config) pen(p pen) pen {
	if !c.useColors {
		return ""
	}
	return p
}

func (c *config) namespacePen(segs []string) pen {
	if p, found := c.colors[top(segs)]; found {
		return p
	}
	return namespacePen
}

// displayWidth counts terminal columns; East Asian wide and fullwidth runes take two.
func displayWidth(s string) (n int) {
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return
}
