package highlight

// ThemedSpan is the reconciled, slot-resolved, renderer-agnostic span:
// deduped, coalesced, keyed by a theme style index usable with
// theme.Theme.Style.
type ThemedSpan struct {
	Start      uint32
	End        uint32
	ThemeIndex int
}

// SpansToThemed converts raw spans to themed spans: dedup by identical
// range, drop captures with no styled slot, coalesce touching same-slot
// runs. Emitted order is ascending by start offset. An input where
// every span maps to None yields an empty list; callers render the
// source unstyled in that case.
func SpansToThemed(spans []Span) []ThemedSpan {
	if len(spans) == 0 {
		return nil
	}

	coalesced := coalesceIndexed(dedupSpans(spans), nil)
	if len(coalesced) == 0 {
		return nil
	}

	out := make([]ThemedSpan, len(coalesced))
	for i, span := range coalesced {
		out[i] = ThemedSpan{Start: span.start, End: span.end, ThemeIndex: span.index}
	}
	return out
}
