package highlight

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/yonasBSD/arborium/theme"
)

func TestSpansToThemed_Basic(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 2, Capture: "keyword"},
		{Start: 3, End: 7, Capture: "function"},
		{Start: 8, End: 12, Capture: "spell"},
	}

	got := SpansToThemed(spans)
	kw, _ := theme.Keyword.Index()
	fn, _ := theme.Function.Index()
	if len(got) != 2 {
		t.Fatalf("themed = %+v, want 2 spans", got)
	}
	if got[0] != (ThemedSpan{Start: 0, End: 2, ThemeIndex: kw}) {
		t.Fatalf("themed[0] = %+v", got[0])
	}
	if got[1] != (ThemedSpan{Start: 3, End: 7, ThemeIndex: fn}) {
		t.Fatalf("themed[1] = %+v", got[1])
	}
}

func TestSpansToThemed_Empty(t *testing.T) {
	if got := SpansToThemed(nil); got != nil {
		t.Fatalf("themed = %+v, want nil", got)
	}
	if got := SpansToThemed([]Span{{Start: 0, End: 3, Capture: "none"}}); got != nil {
		t.Fatalf("all-unstyled input should yield nil, got %+v", got)
	}
}

// Captures whose name survives a round trip through the slot table.
var roundTripCaptures = []string{
	"keyword", "function", "string", "comment", "type", "variable",
	"constant", "number", "operator", "punctuation", "property",
	"attribute", "tag", "macro", "label", "namespace", "constructor",
	"embedded", "error", "spell", "none",
}

func genSpans(t *rapid.T) []Span {
	n := rapid.IntRange(0, 40).Draw(t, "n")
	spans := make([]Span, n)
	for i := range spans {
		start := rapid.Uint32Range(0, 200).Draw(t, "start")
		length := rapid.Uint32Range(1, 30).Draw(t, "length")
		spans[i] = Span{
			Start:        start,
			End:          start + length,
			Capture:      rapid.SampledFrom(roundTripCaptures).Draw(t, "capture"),
			PatternIndex: rapid.Uint32Range(0, 10).Draw(t, "pattern"),
		}
	}
	return spans
}

func TestSpansToThemed_OrderedAndMerged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		themed := SpansToThemed(genSpans(t))

		for i, span := range themed {
			if span.Start >= span.End {
				t.Fatalf("empty themed span %+v", span)
			}
			if span.ThemeIndex < 0 || span.ThemeIndex >= theme.SlotCount {
				t.Fatalf("theme index out of range: %+v", span)
			}
			if i == 0 {
				continue
			}
			prev := themed[i-1]
			if span.Start < prev.Start {
				t.Fatalf("themed spans out of order: %+v before %+v", prev, span)
			}
			if span.ThemeIndex == prev.ThemeIndex && span.Start <= prev.End {
				t.Fatalf("unmerged same-slot runs: %+v then %+v", prev, span)
			}
		}
	})
}

func TestSpansToThemed_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		once := SpansToThemed(genSpans(t))

		// Feed the reconciled output back through as raw spans; a
		// second pass must change nothing.
		back := make([]Span, len(once))
		for i, span := range once {
			name, _ := theme.Slot(span.ThemeIndex).Name()
			back[i] = Span{Start: span.Start, End: span.End, Capture: name}
		}
		twice := SpansToThemed(back)

		if len(twice) != len(once) {
			t.Fatalf("second pass changed span count: %d vs %d", len(once), len(twice))
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("second pass changed span %d: %+v vs %+v", i, once[i], twice[i])
			}
		}
	})
}
