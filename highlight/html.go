package highlight

import (
	"sort"
	"strings"

	"github.com/yonasBSD/arborium/theme"
)

// SpansToHTML renders source with the reconciled spans as HTML.
//
// Trailing newlines are trimmed from the source first so embedding the
// output in <pre><code> does not show a stray empty styled line. With
// no surviving spans the escaped source is returned verbatim.
func SpansToHTML(source string, spans []Span, format HTMLFormat) string {
	source = strings.TrimRight(source, "\n")

	if len(spans) == 0 {
		return EscapeHTML(source)
	}

	coalesced := coalesceTagged(dedupSpans(spans))
	if len(coalesced) == 0 {
		return EscapeHTML(source)
	}

	events := spanEvents(len(coalesced), func(i int) (uint32, uint32) {
		return coalesced[i].start, coalesced[i].end
	})

	var html strings.Builder
	html.Grow(len(source) * 2)
	lastPos := 0
	var stack []int

	emit := func(text string) {
		if len(stack) == 0 {
			html.WriteString(EscapeHTML(text))
			return
		}
		top := coalesced[stack[len(stack)-1]]
		openTag, closeTag := makeHTMLTags(top.tag, format)
		html.WriteString(openTag)
		html.WriteString(EscapeHTML(text))
		html.WriteString(closeTag)
	}

	for _, ev := range events {
		pos := int(ev.pos)
		if pos > lastPos && pos <= len(source) {
			emit(source[lastPos:pos])
			lastPos = pos
		}
		if ev.open {
			stack = append(stack, ev.span)
		} else {
			stack = removeSpan(stack, ev.span)
		}
	}

	if lastPos < len(source) {
		emit(source[lastPos:])
	}

	return html.String()
}

// event is a span boundary. Closes sort before opens at the same
// position so touching spans do not nest into each other.
type event struct {
	pos  uint32
	open bool
	span int
}

func spanEvents(n int, bounds func(i int) (start, end uint32)) []event {
	events := make([]event, 0, 2*n)
	for i := 0; i < n; i++ {
		start, end := bounds(i)
		events = append(events, event{pos: start, open: true, span: i})
		events = append(events, event{pos: end, open: false, span: i})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		return !events[i].open && events[j].open
	})
	return events
}

// removeSpan pops the most recent occurrence of span from the stack.
func removeSpan(stack []int, span int) []int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == span {
			return append(stack[:i], stack[i+1:]...)
		}
	}
	return stack
}

func makeHTMLTags(tag string, format HTMLFormat) (openTag, closeTag string) {
	switch format.kind {
	case customElements:
		return "<a-" + tag + ">", "</a-" + tag + ">"
	case customElementsWithPrefix:
		return "<" + format.prefix + "-" + tag + ">", "</" + format.prefix + "-" + tag + ">"
	case classNames:
		if name, ok := theme.TagToName(tag); ok {
			return `<span class="` + name + `">`, "</span>"
		}
		return "<span>", "</span>"
	case classNamesWithPrefix:
		if name, ok := theme.TagToName(tag); ok {
			return `<span class="` + format.prefix + "-" + name + `">`, "</span>"
		}
		return "<span>", "</span>"
	default:
		return "<a-" + tag + ">", "</a-" + tag + ">"
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five HTML-special characters.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
