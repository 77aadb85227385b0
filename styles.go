package logfox

import "strings"

// COLORS / STYLES

// a pen is an ANSI SGR escape sequence, or "" for no styling
type pen string

func (p pen) use(b *buffer) {
	if len(p) > 0 {
		b.WriteString(string(p))
	}
}

func (p pen) drop(b *buffer) {
	if len(p) > 0 {
		b.WriteString("\x1b[0m")
	}
}

// newPen reads a space-separated color description, e.g. "bright magenta" or "dim cyan bg black".
//
// Recognized words:
//   - colors: black, red, green, yellow, blue, magenta, cyan, white
//   - "bg" / "fg" switch which of background or foreground following colors apply to
//   - effects: bold (or bright), dim (or dark), italic, underline, blink
//
// Unrecognized words are ignored.
func newPen(s string) pen {
	var fg, bg byte
	var effects [len(penEffectCodes)]bool
	dest := &fg

	for _, word := range strings.Fields(s) {
		switch word {
		case "fg":
			dest = &fg
			continue
		case "bg":
			dest = &bg
			continue
		}

		if c, isColor := penColors[word]; isColor {
			*dest = c
			continue
		}

		i, isEffect := penEffects[word]
		if !isEffect {
			continue
		}
		// bright and dim cancel each other
		switch i {
		case 0:
			effects[1] = false
		case 1:
			effects[0] = false
		}
		effects[i] = true
	}

	var codes []string
	if fg != 0 {
		codes = append(codes, string([]byte{'3', fg}))
	}
	if bg != 0 {
		codes = append(codes, string([]byte{'4', bg}))
	}
	for i, on := range effects {
		if on {
			codes = append(codes, penEffectCodes[i])
		}
	}

	if len(codes) == 0 {
		return ""
	}
	return pen("\x1b[" + strings.Join(codes, ";") + "m")
}

var penColors = map[string]byte{
	"black":   '0',
	"red":     '1',
	"green":   '2',
	"yellow":  '3',
	"blue":    '4',
	"magenta": '5',
	"cyan":    '6',
	"white":   '7',
}

// SGR codes of effects, in the order they are written
var penEffectCodes = [...]string{"1", "2", "3", "4", "5"}

// effect words, as indexes into penEffectCodes
var penEffects = map[string]int{
	"bold":      0,
	"bright":    0,
	"dim":       1,
	"dark":      1,
	"italic":    2,
	"underline": 3,
	"blink":     4,
}

var (
	timePen      = newPen("dim")
	namespacePen = newPen("white")

	levelPens = [...]pen{
		LevelError: newPen("red"),
		LevelWarn:  newPen("yellow"),
		LevelInfo:  newPen("green"),
		LevelDebug: newPen("cyan"),
		LevelTrace: newPen("blue"),
	}
)

func levelPen(level Level) pen {
	if level < LevelError || level > LevelTrace {
		return ""
	}
	return levelPens[level]
}

// HYPERLINKS

// OSC 8 terminal hyperlinks; terminals without support print the enclosed text alone
func linkOpen(b *buffer, o *Origin) {
	b.WriteString("\x1b]8;;vscode://file/")
	b.WriteString(o.String())
	b.WriteString("\x1b\\")
}

func linkClose(b *buffer) {
	b.WriteString("\x1b]8;;\x1b\\")
}
