package highlight

import (
	"strings"
	"testing"

	"github.com/yonasBSD/arborium/theme"
)

func ansiTestTheme() *theme.Theme {
	return theme.New("test",
		map[theme.Slot]theme.Style{
			theme.Keyword:  {Foreground: "#ff0000", Bold: true},
			theme.Function: {Foreground: "#00ff00"},
			theme.String:   {Foreground: "#0000ff"},
		},
		theme.Style{Foreground: "#c0c0c0", Background: "#101010"},
		theme.Style{Foreground: "#404040"},
	)
}

func slotSeq(t *theme.Theme, s theme.Slot) string {
	i, _ := s.Index()
	return t.ANSIStyle(i)
}

func slotSeqWithBase(t *theme.Theme, s theme.Slot) string {
	i, _ := s.Index()
	return t.ANSIStyleWithBase(i)
}

func TestSpansToANSI_SimpleTokens(t *testing.T) {
	th := ansiTestTheme()
	source := "fn main"
	spans := []Span{
		{Start: 0, End: 2, Capture: "keyword"},
		{Start: 3, End: 7, Capture: "function"},
	}

	got := SpansToANSI(source, spans, th, ANSIOptions{})
	want := slotSeq(th, theme.Keyword) + "fn" + theme.ANSIReset +
		" " + slotSeq(th, theme.Function) + "main" + theme.ANSIReset
	if got != want {
		t.Fatalf("ansi = %q, want %q", got, want)
	}
}

func TestSpansToANSI_TrimsTrailingNewlines(t *testing.T) {
	th := ansiTestTheme()
	source := "fn\n\n"
	spans := []Span{{Start: 0, End: 2, Capture: "keyword"}}

	got := SpansToANSI(source, spans, th, ANSIOptions{})
	want := slotSeq(th, theme.Keyword) + "fn" + theme.ANSIReset
	if got != want {
		t.Fatalf("ansi = %q, want %q", got, want)
	}
}

func TestSpansToANSI_BaseStyle(t *testing.T) {
	th := ansiTestTheme()
	source := "fn x"
	spans := []Span{{Start: 0, End: 2, Capture: "keyword"}}

	got := SpansToANSI(source, spans, th, ANSIOptions{UseThemeBaseStyle: true})
	base := th.ANSIBaseStyle()
	want := base + slotSeqWithBase(th, theme.Keyword) + "fn" +
		theme.ANSIReset + base + " x" + theme.ANSIReset
	if got != want {
		t.Fatalf("ansi = %q, want %q", got, want)
	}
}

func TestSpansToANSI_BaseStyleDropsEmptyStyles(t *testing.T) {
	th := ansiTestTheme()
	source := "// note"
	// Comment has no style in the test theme, so under the base-style
	// option the span vanishes and the source passes through untouched.
	spans := []Span{{Start: 0, End: 7, Capture: "comment"}}

	got := SpansToANSI(source, spans, th, ANSIOptions{UseThemeBaseStyle: true})
	if got != source {
		t.Fatalf("ansi = %q, want plain source", got)
	}
}

func TestSpansToANSI_NoSpans(t *testing.T) {
	th := ansiTestTheme()
	if got := SpansToANSI("plain\n", nil, th, ANSIOptions{}); got != "plain" {
		t.Fatalf("ansi = %q, want %q", got, "plain")
	}
}

func TestSpansToANSI_AllUnstyled(t *testing.T) {
	th := ansiTestTheme()
	source := "hello"
	spans := []Span{{Start: 0, End: 5, Capture: "spell"}}
	if got := SpansToANSI(source, spans, th, ANSIOptions{}); got != source {
		t.Fatalf("ansi = %q, want plain source", got)
	}
}

func TestSpansToANSI_Wrapping(t *testing.T) {
	th := ansiTestTheme()
	source := strings.Repeat("a", 20)
	spans := []Span{{Start: 0, End: 20, Capture: "string"}}

	got := SpansToANSI(source, spans, th, ANSIOptions{Width: 12})
	str := slotSeq(th, theme.String)
	want := str + strings.Repeat("a", 12) + theme.ANSIReset + "\n" +
		str + strings.Repeat("a", 8) + theme.ANSIReset
	if got != want {
		t.Fatalf("ansi = %q, want %q", got, want)
	}
}

func TestSpansToANSI_MinimumContentWidth(t *testing.T) {
	th := ansiTestTheme()
	source := strings.Repeat("a", 15)
	spans := []Span{{Start: 0, End: 15, Capture: "string"}}

	// Width 3 is clamped up so output stays readable.
	got := SpansToANSI(source, spans, th, ANSIOptions{Width: 3})
	str := slotSeq(th, theme.String)
	want := str + strings.Repeat("a", 10) + theme.ANSIReset + "\n" +
		str + strings.Repeat("a", 5) + theme.ANSIReset
	if got != want {
		t.Fatalf("ansi = %q, want %q", got, want)
	}
}

func TestSpansToANSI_BorderAndPadToWidth(t *testing.T) {
	th := ansiTestTheme()
	source := "abcdef"
	spans := []Span{{Start: 0, End: 6, Capture: "string"}}

	got := SpansToANSI(source, spans, th, ANSIOptions{
		UseThemeBaseStyle: true,
		Width:             12,
		PadToWidth:        true,
		Border:            true,
	})

	base := th.ANSIBaseStyle()
	border := th.ANSIBorderStyle()
	str := slotSeqWithBase(th, theme.String)
	want := border + strings.Repeat("▄", 12) + theme.ANSIReset + "\n" +
		base +
		str +
		border + "█" + theme.ANSIReset + base + str +
		"abcdef" + strings.Repeat(" ", 4) +
		theme.ANSIReset + border + "█" + theme.ANSIReset + "\n" +
		border + strings.Repeat("▀", 12) + theme.ANSIReset
	if got != want {
		t.Fatalf("ansi = %q, want %q", got, want)
	}
}

func TestSpansToANSI_TabExpansion(t *testing.T) {
	th := ansiTestTheme()
	source := "a\tb"
	spans := []Span{{Start: 0, End: 3, Capture: "keyword"}}

	got := SpansToANSI(source, spans, th, ANSIOptions{})
	want := slotSeq(th, theme.Keyword) + "a   b" + theme.ANSIReset
	if got != want {
		t.Fatalf("ansi = %q, want %q", got, want)
	}
}

func TestSpansToANSI_AdjacentSameSlotCoalesce(t *testing.T) {
	th := ansiTestTheme()
	source := "keyword"
	spans := []Span{
		{Start: 0, End: 3, Capture: "keyword.function"},
		{Start: 3, End: 7, Capture: "keyword.return"},
	}

	got := SpansToANSI(source, spans, th, ANSIOptions{})
	want := slotSeq(th, theme.Keyword) + "keyword" + theme.ANSIReset
	if got != want {
		t.Fatalf("adjacent same-slot runs should merge: %q", got)
	}
}

func TestDefaultANSIOptions(t *testing.T) {
	opts := DefaultANSIOptions()
	if opts.TabWidth != 4 {
		t.Fatalf("default tab width = %d, want 4", opts.TabWidth)
	}
}
