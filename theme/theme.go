package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// ANSIReset clears all active SGR attributes.
const ANSIReset = "\x1b[0m"

// Style is one renderable style: truecolor foreground/background plus
// attribute flags. Empty color strings mean "unset".
type Style struct {
	Foreground    string // "#rrggbb"
	Background    string // "#rrggbb"
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// IsZero reports whether the style sets nothing at all.
func (s Style) IsZero() bool {
	return s.Foreground == "" && s.Background == "" &&
		!s.Bold && !s.Italic && !s.Underline && !s.Strikethrough
}

// ansi renders the style as a single SGR sequence, or "" for a zero style.
func (s Style) ansi() string {
	var parts []string
	if r, g, b, ok := parseHex(s.Foreground); ok {
		parts = append(parts, "38;2;"+itoa(r)+";"+itoa(g)+";"+itoa(b))
	}
	if r, g, b, ok := parseHex(s.Background); ok {
		parts = append(parts, "48;2;"+itoa(r)+";"+itoa(g)+";"+itoa(b))
	}
	if s.Bold {
		parts = append(parts, "1")
	}
	if s.Italic {
		parts = append(parts, "3")
	}
	if s.Underline {
		parts = append(parts, "4")
	}
	if s.Strikethrough {
		parts = append(parts, "9")
	}
	if len(parts) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

func itoa(v int) string { return strconv.Itoa(v) }

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), true
}

// Theme carries one style per slot plus the base and border styles the
// ANSI renderer asks for. Themes are immutable after construction and
// safe to share across goroutines.
type Theme struct {
	Name   string
	styles [SlotCount]Style
	base   Style
	border Style
}

// New builds a theme from explicit per-slot styles. Missing slots stay
// unstyled.
func New(name string, styles map[Slot]Style, base, border Style) *Theme {
	t := &Theme{Name: name, base: base, border: border}
	for slot, style := range styles {
		if i, ok := slot.Index(); ok {
			t.styles[i] = style
		}
	}
	return t
}

// Style returns the style for a theme index, or false when the index is
// out of range.
func (t *Theme) Style(index int) (Style, bool) {
	if index < 0 || index >= SlotCount {
		return Style{}, false
	}
	return t.styles[index], true
}

// BaseStyle is the theme's default foreground/background.
func (t *Theme) BaseStyle() Style { return t.base }

// BorderStyle is the style used for box-drawing borders.
func (t *Theme) BorderStyle() Style { return t.border }

// ANSIStyle renders the SGR sequence for a theme index, or "" for an
// unknown index or a zero style.
func (t *Theme) ANSIStyle(index int) string {
	s, ok := t.Style(index)
	if !ok {
		return ""
	}
	return s.ansi()
}

// ANSIStyleWithBase renders the style for index layered over the base
// foreground/background, so styled runs keep the theme background when
// the base-style option is on.
func (t *Theme) ANSIStyleWithBase(index int) string {
	s, ok := t.Style(index)
	if !ok {
		return t.ANSIBaseStyle()
	}
	if s.Foreground == "" {
		s.Foreground = t.base.Foreground
	}
	if s.Background == "" {
		s.Background = t.base.Background
	}
	return s.ansi()
}

// ANSIBaseStyle renders the base style's SGR sequence.
func (t *Theme) ANSIBaseStyle() string { return t.base.ansi() }

// ANSIBorderStyle renders the border style's SGR sequence.
func (t *Theme) ANSIBorderStyle() string { return t.border.ansi() }

// String implements fmt.Stringer for debugging output.
func (t *Theme) String() string {
	return fmt.Sprintf("theme(%s)", t.Name)
}
