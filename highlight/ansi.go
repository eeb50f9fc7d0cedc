package highlight

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/yonasBSD/arborium/theme"
)

// ANSIOptions controls terminal rendering. The zero value disables
// wrapping and decoration; DefaultANSIOptions picks up the terminal
// width when one is attached.
type ANSIOptions struct {
	// UseThemeBaseStyle applies the theme's base foreground/background
	// to otherwise-unstyled regions.
	UseThemeBaseStyle bool
	// Width is the hard wrap column. 0 disables wrapping.
	Width int
	// PadToWidth pads each visual line with spaces out to Width.
	PadToWidth bool
	// TabWidth is the tab stop size. 0 means 4.
	TabWidth int
	// MarginX/MarginY are unstyled blank columns/rows outside the border.
	MarginX int
	MarginY int
	// PaddingX/PaddingY are styled blank columns/rows inside the border.
	PaddingX int
	PaddingY int
	// Border draws a half/full-block box around the output.
	Border bool
}

// DefaultANSIOptions detects the terminal width for wrapping; without a
// terminal it behaves like the zero value plus the default tab width.
func DefaultANSIOptions() ANSIOptions {
	opts := ANSIOptions{TabWidth: 4}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		opts.Width = w
		opts.PadToWidth = true
	}
	return opts
}

// Box drawing characters for the ANSI border: half blocks top/bottom,
// full blocks left/right.
const (
	boxTop    = '▄'
	boxBottom = '▀'
	boxLeft   = '█'
	boxRight  = '█'
)

// minContentWidth keeps output usable on very narrow terminals.
const minContentWidth = 10

// SpansToANSI renders source with ANSI escape sequences for t.
//
// Reconciliation is the same dedup+coalesce as HTML but keyed on theme
// style indices. Style transitions emit a reset followed by the new
// sequence; wrapping redraws border and padding and re-applies the
// active style at every wrap point.
func SpansToANSI(source string, spans []Span, t *theme.Theme, opts ANSIOptions) string {
	source = strings.TrimRight(source, "\n")

	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}

	if len(spans) == 0 {
		return source
	}

	var drop func(index int) bool
	if opts.UseThemeBaseStyle {
		drop = func(index int) bool {
			style, ok := t.Style(index)
			return ok && style.IsZero()
		}
	}

	coalesced := coalesceIndexed(dedupSpans(spans), drop)
	if len(coalesced) == 0 {
		return source
	}

	w := &ansiWriter{
		theme:  t,
		opts:   opts,
		active: -1,
	}
	if opts.UseThemeBaseStyle {
		w.base = t.ANSIBaseStyle()
	}
	if opts.Border {
		w.borderSeq = t.ANSIBorderStyle()
	}
	if opts.Width > 0 {
		w.totalWidth = opts.Width
		if w.totalWidth < minContentWidth {
			w.totalWidth = minContentWidth
		}
		w.contentWidth = w.totalWidth
		if opts.Border {
			w.contentWidth -= 2
		}
		if w.contentWidth < minContentWidth {
			w.contentWidth = minContentWidth
		}
	}

	w.header()

	events := spanEvents(len(coalesced), func(i int) (uint32, uint32) {
		return coalesced[i].start, coalesced[i].end
	})

	lastPos := 0
	var stack []int
	for _, ev := range events {
		pos := int(ev.pos)
		if pos > lastPos && pos <= len(source) {
			w.segment(source[lastPos:pos], stackTop(stack, coalesced))
			lastPos = pos
		}
		if ev.open {
			stack = append(stack, ev.span)
		} else {
			stack = removeSpan(stack, ev.span)
		}
	}
	if lastPos < len(source) {
		w.segment(source[lastPos:], stackTop(stack, coalesced))
	}

	w.footer()
	return w.out.String()
}

func stackTop(stack []int, spans []indexedSpan) int {
	if len(stack) == 0 {
		return -1
	}
	return spans[stack[len(stack)-1]].index
}

// ansiWriter tracks the current visual column independently of byte
// position so wrapping decisions use rendered width, not source length.
type ansiWriter struct {
	out       strings.Builder
	theme     *theme.Theme
	opts      ANSIOptions
	base      string
	borderSeq string

	totalWidth   int // 0 when wrapping is off
	contentWidth int

	col     int
	active  int // theme index of the active style, -1 for none
	started bool
}

func (w *ansiWriter) styleSeq(index int) string {
	if w.opts.UseThemeBaseStyle {
		return w.theme.ANSIStyleWithBase(index)
	}
	return w.theme.ANSIStyle(index)
}

// segment writes one text run, switching styles first when the desired
// style differs from the active one.
func (w *ansiWriter) segment(text string, desired int) {
	switch {
	case w.active == desired:
		if desired == -1 && !w.started && w.base != "" {
			w.out.WriteString(w.base)
			w.started = true
		}
		w.writeText(text, desired)

	case w.active != -1 && desired != -1:
		w.out.WriteString(theme.ANSIReset)
		style := w.styleSeq(desired)
		if w.opts.UseThemeBaseStyle {
			w.out.WriteString(style)
		} else {
			if w.base != "" {
				w.out.WriteString(w.base)
			}
			w.out.WriteString(style)
		}
		w.writeText(text, desired)
		w.active = desired

	case desired != -1:
		style := w.styleSeq(desired)
		if style != "" && style != w.base {
			w.out.WriteString(style)
			w.started = true
		} else if !w.started && w.base != "" {
			w.out.WriteString(w.base)
			w.started = true
		}
		w.writeText(text, desired)
		w.active = desired

	default:
		w.out.WriteString(theme.ANSIReset)
		if w.base != "" {
			w.out.WriteString(w.base)
		}
		w.writeText(text, -1)
		w.active = -1
	}
}

func (w *ansiWriter) charWidth(r rune) int {
	if r == '\t' {
		next := (w.col/w.opts.TabWidth + 1) * w.opts.TabWidth
		return next - w.col
	}
	return runewidth.RuneWidth(r)
}

// writeText appends text, expanding tabs and wrapping at the content
// width when wrapping is on. active is re-applied after each wrap.
func (w *ansiWriter) writeText(text string, active int) {
	if w.totalWidth == 0 {
		for _, r := range text {
			if r == '\n' || r == '\r' {
				w.col = 0
				w.out.WriteRune(r)
				continue
			}
			width := w.charWidth(r)
			if r == '\t' {
				w.writeSpaces(width)
			} else {
				w.out.WriteRune(r)
			}
			w.col += width
		}
		return
	}

	contentEnd := w.contentWidth - w.opts.PaddingX

	for _, r := range text {
		if w.col == 0 {
			w.lineStart(active)
		}

		if r == '\n' || r == '\r' {
			w.lineEnd()
			if w.base != "" {
				w.out.WriteString(w.base)
			}
			if active >= 0 {
				w.out.WriteString(w.styleSeq(active))
			}
			continue
		}

		width := w.charWidth(r)
		if width > 0 && w.col+width > contentEnd {
			w.lineEnd()
			if w.base != "" {
				w.out.WriteString(w.base)
			}
			w.lineStart(active)
			if active >= 0 && !w.opts.Border {
				w.out.WriteString(w.styleSeq(active))
			}
		}

		if r == '\t' {
			width = w.charWidth('\t')
			w.writeSpaces(width)
		} else {
			w.out.WriteRune(r)
		}
		w.col += width
	}
}

// lineStart draws margin, left border and left padding for a fresh
// visual row, then re-applies the active style.
func (w *ansiWriter) lineStart(active int) {
	w.writeSpaces(w.opts.MarginX)
	if w.opts.Border && w.borderSeq != "" {
		w.out.WriteString(w.borderSeq)
		w.out.WriteRune(boxLeft)
		w.out.WriteString(theme.ANSIReset)
		if w.base != "" {
			w.out.WriteString(w.base)
		}
	}
	if active >= 0 && w.opts.Border {
		w.out.WriteString(w.styleSeq(active))
	}
	if w.opts.PaddingX > 0 {
		w.writeSpaces(w.opts.PaddingX)
		w.col += w.opts.PaddingX
	}
}

// lineEnd pads to the content width, draws the right border, and resets
// before the newline so the background never bleeds to the terminal edge.
func (w *ansiWriter) lineEnd() {
	if w.opts.PadToWidth && w.col < w.contentWidth {
		w.writeSpaces(w.contentWidth - w.col)
	}
	if w.opts.Border && w.borderSeq != "" {
		w.out.WriteString(theme.ANSIReset)
		w.out.WriteString(w.borderSeq)
		w.out.WriteRune(boxRight)
	}
	w.out.WriteString(theme.ANSIReset)
	w.out.WriteByte('\n')
	w.col = 0
}

func (w *ansiWriter) writeSpaces(n int) {
	for i := 0; i < n; i++ {
		w.out.WriteByte(' ')
	}
}

// header emits top margin, border and padding rows before the content.
func (w *ansiWriter) header() {
	if w.totalWidth == 0 {
		if w.base != "" {
			w.out.WriteString(w.base)
			w.started = true
		}
		return
	}

	for i := 0; i < w.opts.MarginY; i++ {
		w.out.WriteByte('\n')
	}

	if w.opts.Border {
		w.writeSpaces(w.opts.MarginX)
		w.out.WriteString(w.borderSeq)
		for i := 0; i < w.totalWidth; i++ {
			w.out.WriteRune(boxTop)
		}
		w.out.WriteString(theme.ANSIReset)
		w.out.WriteByte('\n')
	}

	if w.opts.PaddingY > 0 {
		for i := 0; i < w.opts.PaddingY; i++ {
			w.paddingRow()
		}
	} else if w.base != "" {
		w.out.WriteString(w.base)
		w.started = true
	}
}

// paddingRow is one blank styled row between border and content.
func (w *ansiWriter) paddingRow() {
	w.writeSpaces(w.opts.MarginX)
	if w.opts.Border {
		w.out.WriteString(w.borderSeq)
		w.out.WriteRune(boxLeft)
	}
	if w.base != "" {
		w.out.WriteString(w.base)
		w.started = true
	}
	inner := w.totalWidth
	if w.opts.Border {
		inner -= 2
	}
	w.writeSpaces(inner)
	if w.opts.Border {
		w.out.WriteString(theme.ANSIReset)
		w.out.WriteString(w.borderSeq)
		w.out.WriteRune(boxRight)
	}
	w.out.WriteString(theme.ANSIReset)
	w.out.WriteByte('\n')
	if w.base != "" {
		w.out.WriteString(w.base)
	}
}

// footer closes the final content line, then emits bottom padding,
// border and margin.
func (w *ansiWriter) footer() {
	if w.totalWidth == 0 {
		if w.active != -1 || w.base != "" {
			w.out.WriteString(theme.ANSIReset)
		}
		return
	}

	if w.opts.PadToWidth && w.col < w.contentWidth {
		w.writeSpaces(w.contentWidth - w.col)
	}
	if w.opts.Border && w.borderSeq != "" {
		w.out.WriteString(theme.ANSIReset)
		w.out.WriteString(w.borderSeq)
		w.out.WriteRune(boxRight)
	}
	w.out.WriteString(theme.ANSIReset)

	for i := 0; i < w.opts.PaddingY; i++ {
		w.out.WriteByte('\n')
		w.writeSpaces(w.opts.MarginX)
		if w.opts.Border {
			w.out.WriteString(w.borderSeq)
			w.out.WriteRune(boxLeft)
		}
		if w.base != "" {
			w.out.WriteString(w.base)
		}
		inner := w.totalWidth
		if w.opts.Border {
			inner -= 2
		}
		w.writeSpaces(inner)
		if w.opts.Border {
			w.out.WriteString(theme.ANSIReset)
			w.out.WriteString(w.borderSeq)
			w.out.WriteRune(boxRight)
		}
		w.out.WriteString(theme.ANSIReset)
	}

	if w.opts.Border {
		w.out.WriteByte('\n')
		w.writeSpaces(w.opts.MarginX)
		w.out.WriteString(w.borderSeq)
		for i := 0; i < w.totalWidth; i++ {
			w.out.WriteRune(boxBottom)
		}
		w.out.WriteString(theme.ANSIReset)
	}

	for i := 0; i < w.opts.MarginY; i++ {
		w.out.WriteByte('\n')
	}
}
