package highlight

import "testing"

func TestSpansToHTML_SimpleTokens(t *testing.T) {
	source := "fn main() {}"
	spans := []Span{
		{Start: 0, End: 2, Capture: "keyword"},
		{Start: 3, End: 7, Capture: "function"},
	}

	got := SpansToHTML(source, spans, CustomElements())
	want := "<a-k>fn</a-k> <a-f>main</a-f>() {}"
	if got != want {
		t.Fatalf("html = %q, want %q", got, want)
	}
}

func TestSpansToHTML_TrimsTrailingNewlines(t *testing.T) {
	source := "fn main() {}\n\n"
	spans := []Span{{Start: 0, End: 2, Capture: "keyword"}}

	got := SpansToHTML(source, spans, CustomElements())
	want := "<a-k>fn</a-k> main() {}"
	if got != want {
		t.Fatalf("html = %q, want %q", got, want)
	}
}

func TestSpansToHTML_CoalescesAdjacentSameSlot(t *testing.T) {
	// "key" and "word" carry different capture names mapping to the
	// same slot and touch, so they merge into a single element.
	source := "keyword"
	spans := []Span{
		{Start: 0, End: 3, Capture: "keyword.function"},
		{Start: 3, End: 7, Capture: "keyword.return"},
	}

	got := SpansToHTML(source, spans, CustomElements())
	want := "<a-k>keyword</a-k>"
	if got != want {
		t.Fatalf("html = %q, want %q", got, want)
	}
}

func TestSpansToHTML_DedupPrefersStyled(t *testing.T) {
	source := "word"
	spans := []Span{
		{Start: 0, End: 4, Capture: "keyword", PatternIndex: 1},
		{Start: 0, End: 4, Capture: "spell", PatternIndex: 7},
	}

	got := SpansToHTML(source, spans, CustomElements())
	want := "<a-k>word</a-k>"
	if got != want {
		t.Fatalf("styled capture should beat unstyled: %q", got)
	}
}

func TestSpansToHTML_DedupHigherPatternWins(t *testing.T) {
	source := "word"
	spans := []Span{
		{Start: 0, End: 4, Capture: "keyword", PatternIndex: 1},
		{Start: 0, End: 4, Capture: "string", PatternIndex: 5},
	}

	got := SpansToHTML(source, spans, CustomElements())
	want := "<a-s>word</a-s>"
	if got != want {
		t.Fatalf("higher pattern index should win: %q", got)
	}
}

func TestSpansToHTML_NestedSpansTopOfStackWins(t *testing.T) {
	// A string span containing an escape: the inner span's style
	// applies while it is open, the outer resumes afterwards.
	source := `"a\nb"`
	spans := []Span{
		{Start: 0, End: 6, Capture: "string"},
		{Start: 2, End: 4, Capture: "keyword"},
	}

	got := SpansToHTML(source, spans, CustomElements())
	want := `<a-s>&quot;a</a-s><a-k>\n</a-k><a-s>b&quot;</a-s>`
	if got != want {
		t.Fatalf("html = %q, want %q", got, want)
	}
}

func TestSpansToHTML_NoSpans(t *testing.T) {
	source := "plain <text> & more"
	got := SpansToHTML(source, nil, CustomElements())
	want := "plain &lt;text&gt; &amp; more"
	if got != want {
		t.Fatalf("html = %q, want %q", got, want)
	}
}

func TestSpansToHTML_AllUnstyledRoundTrips(t *testing.T) {
	source := "hello world"
	spans := []Span{
		{Start: 0, End: 5, Capture: "spell"},
		{Start: 6, End: 11, Capture: "nospell"},
	}

	got := SpansToHTML(source, spans, CustomElements())
	if got != source {
		t.Fatalf("unstyled spans should leave source intact: %q", got)
	}
}

func TestSpansToHTML_Formats(t *testing.T) {
	source := "fn"
	spans := []Span{{Start: 0, End: 2, Capture: "keyword"}}

	cases := []struct {
		name   string
		format HTMLFormat
		want   string
	}{
		{"custom elements", CustomElements(), "<a-k>fn</a-k>"},
		{"prefixed elements", CustomElementsWithPrefix("code"), "<code-k>fn</code-k>"},
		{"class names", ClassNames(), `<span class="keyword">fn</span>`},
		{"prefixed classes", ClassNamesWithPrefix("arb"), `<span class="arb-keyword">fn</span>`},
		{"zero value", HTMLFormat{}, "<a-k>fn</a-k>"},
	}
	for _, tc := range cases {
		if got := SpansToHTML(source, spans, tc.format); got != tc.want {
			t.Errorf("%s: html = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSpansToHTML_EscapesInsideTags(t *testing.T) {
	source := `<script>`
	spans := []Span{{Start: 0, End: 8, Capture: "tag"}}

	got := SpansToHTML(source, spans, CustomElements())
	want := "<a-tg>&lt;script&gt;</a-tg>"
	if got != want {
		t.Fatalf("html = %q, want %q", got, want)
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<a href="x">'&'</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;&#39;&amp;&#39;&lt;/a&gt;"
	if got != want {
		t.Fatalf("escaped = %q, want %q", got, want)
	}
}
