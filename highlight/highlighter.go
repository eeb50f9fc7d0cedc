package highlight

import (
	"context"

	"github.com/yonasBSD/arborium/theme"
)

// Highlighter is the blocking façade: it drives the shared core and
// requires a provider that resolves grammars immediately. If the
// provider ever suspends, that is a pairing bug, signaled by a panic
// rather than an error.
type Highlighter struct {
	core core
}

// NewHighlighter builds a blocking highlighter with default config.
func NewHighlighter(provider GrammarProvider) *Highlighter {
	return NewHighlighterWithConfig(provider, DefaultConfig())
}

// NewHighlighterWithConfig builds a blocking highlighter.
func NewHighlighterWithConfig(provider GrammarProvider, config Config) *Highlighter {
	return &Highlighter{core: core{
		provider: provider,
		config:   config,
		await: func(context.Context, <-chan Grammar) (Grammar, error) {
			panic("highlight: provider suspended during blocking highlight; use AsyncHighlighter for loading providers")
		},
	}}
}

// Provider returns the underlying provider.
func (h *Highlighter) Provider() GrammarProvider { return h.core.provider }

// HighlightSpans returns the raw, unsorted span list for callers doing
// their own rendering.
func (h *Highlighter) HighlightSpans(language, source string) ([]Span, error) {
	return h.core.highlightSpans(context.Background(), language, source)
}

// Highlight renders source as HTML using the configured format.
func (h *Highlighter) Highlight(language, source string) (string, error) {
	spans, err := h.HighlightSpans(language, source)
	if err != nil {
		return "", err
	}
	return SpansToHTML(source, spans, h.core.config.HTMLFormat), nil
}

// HighlightANSI renders source with ANSI escape sequences for t.
func (h *Highlighter) HighlightANSI(language, source string, t *theme.Theme, opts ANSIOptions) (string, error) {
	spans, err := h.HighlightSpans(language, source)
	if err != nil {
		return "", err
	}
	return SpansToANSI(source, spans, t, opts), nil
}

// AsyncHighlighter is the suspending façade: identical algorithm, but a
// provider may hand back a pending channel and the highlighter waits on
// it, honoring ctx cancellation.
type AsyncHighlighter struct {
	core core
}

// NewAsyncHighlighter builds a suspending highlighter with default config.
func NewAsyncHighlighter(provider GrammarProvider) *AsyncHighlighter {
	return NewAsyncHighlighterWithConfig(provider, DefaultConfig())
}

// NewAsyncHighlighterWithConfig builds a suspending highlighter.
func NewAsyncHighlighterWithConfig(provider GrammarProvider, config Config) *AsyncHighlighter {
	return &AsyncHighlighter{core: core{
		provider: provider,
		config:   config,
		await: func(ctx context.Context, pending <-chan Grammar) (Grammar, error) {
			select {
			case grammar := <-pending:
				return grammar, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	}}
}

// Provider returns the underlying provider.
func (h *AsyncHighlighter) Provider() GrammarProvider { return h.core.provider }

// HighlightSpans returns the raw, unsorted span list.
func (h *AsyncHighlighter) HighlightSpans(ctx context.Context, language, source string) ([]Span, error) {
	return h.core.highlightSpans(ctx, language, source)
}

// Highlight renders source as HTML using the configured format.
func (h *AsyncHighlighter) Highlight(ctx context.Context, language, source string) (string, error) {
	spans, err := h.HighlightSpans(ctx, language, source)
	if err != nil {
		return "", err
	}
	return SpansToHTML(source, spans, h.core.config.HTMLFormat), nil
}

// HighlightANSI renders source with ANSI escape sequences for t.
func (h *AsyncHighlighter) HighlightANSI(ctx context.Context, language, source string, t *theme.Theme, opts ANSIOptions) (string, error) {
	spans, err := h.HighlightSpans(ctx, language, source)
	if err != nil {
		return "", err
	}
	return SpansToANSI(source, spans, t, opts), nil
}
