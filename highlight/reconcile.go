package highlight

import (
	"sort"

	"github.com/yonasBSD/arborium/theme"
)

// dedupSpans resolves spans covering an identical byte range down to
// one. A span whose capture maps to a styled slot beats one that maps
// to None; among equals the higher pattern index wins, mirroring the
// grammar convention that later-declared rules override earlier ones.
// The result is sorted by (start, end).
func dedupSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := append([]Span(nil), spans...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	type key struct{ start, end uint32 }
	chosen := make(map[key]Span, len(sorted))
	for _, span := range sorted {
		k := key{span.Start, span.End}
		existing, ok := chosen[k]
		if !ok {
			chosen[k] = span
			continue
		}

		newStyled := theme.CaptureToSlot(span.Capture) != theme.None
		oldStyled := theme.CaptureToSlot(existing.Capture) != theme.None
		replace := false
		switch {
		case newStyled && !oldStyled:
			replace = true
		case !newStyled && oldStyled:
			replace = false
		default:
			replace = span.PatternIndex >= existing.PatternIndex
		}
		if replace {
			chosen[k] = span
		}
	}

	out := make([]Span, 0, len(chosen))
	for _, span := range chosen {
		out = append(out, span)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// taggedSpan is a span resolved to its slot's short tag.
type taggedSpan struct {
	start uint32
	end   uint32
	tag   string
}

// coalesceTagged maps deduped spans to slot tags, drops unstyled ones,
// and merges touching or overlapping same-tag runs into the minimal
// run-length encoding. Input must already be deduped.
func coalesceTagged(spans []Span) []taggedSpan {
	tagged := make([]taggedSpan, 0, len(spans))
	for _, span := range spans {
		tag, ok := theme.TagForCapture(span.Capture)
		if !ok {
			continue
		}
		tagged = append(tagged, taggedSpan{start: span.Start, end: span.End, tag: tag})
	}
	if len(tagged) == 0 {
		return nil
	}

	sort.Slice(tagged, func(i, j int) bool {
		if tagged[i].start != tagged[j].start {
			return tagged[i].start < tagged[j].start
		}
		return tagged[i].end < tagged[j].end
	})

	out := tagged[:1]
	for _, span := range tagged[1:] {
		last := &out[len(out)-1]
		if span.tag == last.tag && span.start <= last.end {
			if span.end > last.end {
				last.end = span.end
			}
			continue
		}
		out = append(out, span)
	}
	return out
}

// indexedSpan is a span resolved to a numeric theme style index.
type indexedSpan struct {
	start uint32
	end   uint32
	index int
}

// coalesceIndexed is coalesceTagged keyed on theme style indices, for
// the ANSI renderer. drop reports indices whose style should be
// filtered out entirely (empty styles under the base-style option).
func coalesceIndexed(spans []Span, drop func(index int) bool) []indexedSpan {
	indexed := make([]indexedSpan, 0, len(spans))
	for _, span := range spans {
		index, ok := theme.CaptureToSlot(span.Capture).Index()
		if !ok {
			continue
		}
		if drop != nil && drop(index) {
			continue
		}
		indexed = append(indexed, indexedSpan{start: span.Start, end: span.End, index: index})
	}
	if len(indexed) == 0 {
		return nil
	}

	sort.Slice(indexed, func(i, j int) bool {
		if indexed[i].start != indexed[j].start {
			return indexed[i].start < indexed[j].start
		}
		return indexed[i].end < indexed[j].end
	})

	out := indexed[:1]
	for _, span := range indexed[1:] {
		last := &out[len(out)-1]
		if span.index == last.index && span.start <= last.end {
			if span.end > last.end {
				last.end = span.end
			}
			continue
		}
		out = append(out, span)
	}
	return out
}
