package logfox

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// TTY DEVICE

// stdMutex guards writes to os.Stdout across every State writing there.
var stdMutex sync.Mutex

// stdout resolves os.Stdout when a line is written, so that a replaced os.Stdout is honored.
// On Windows consoles, the colorable writer translates ANSI sequences.
func stdout() io.Writer {
	return colorable.NewColorable(os.Stdout)
}

// stdoutIsTerminal consults fatih/color, which also honors NO_COLOR and TERM=dumb.
func stdoutIsTerminal() bool {
	return !color.NoColor
}

func writerIsTerminal(w io.Writer) bool {
	file, isFile := w.(*os.File)
	if !isFile {
		return false
	}

	fd := file.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// writeLine renders m and writes it as a single Write call.
func (c *config) writeLine(now time.Time, m *Message, segs []string) {
	b := newBuffer()
	defer b.free()

	c.render(b, now, m, segs)

	w, mu := c.w, c.wmu
	if w == nil {
		w, mu = stdout(), &stdMutex
	}

	mu.Lock()
	defer mu.Unlock()

	w.Write(b.text)
}
