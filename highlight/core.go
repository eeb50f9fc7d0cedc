package highlight

import "context"

// awaitFunc is the driver hook for the provider's suspension point.
// The blocking façade installs a hook that panics; the suspending
// façade installs one that waits on the pending channel.
type awaitFunc func(ctx context.Context, pending <-chan Grammar) (Grammar, error)

// core holds the single injection-walking algorithm shared by both
// façades. It exclusively owns the provider and is not safe for
// concurrent use; callers fork per goroutine instead.
type core struct {
	provider GrammarProvider
	config   Config
	await    awaitFunc
}

// resolve asks the provider for a grammar, driving the suspension point
// through the façade's await hook. A nil grammar with nil error means
// the language is unknown.
func (c *core) resolve(ctx context.Context, language string) (Grammar, error) {
	grammar, pending := c.provider.Get(language)
	if grammar != nil {
		return grammar, nil
	}
	if pending == nil {
		return nil, nil
	}
	return c.await(ctx, pending)
}

// highlightSpans parses the primary language and recursively resolves
// injections, returning the combined, unsorted span list in
// document-absolute coordinates.
func (c *core) highlightSpans(ctx context.Context, language, source string) ([]Span, error) {
	grammar, err := c.resolve(ctx, language)
	if err != nil {
		return nil, err
	}
	if grammar == nil {
		return nil, &UnsupportedLanguageError{Language: language}
	}

	result := grammar.Parse(source)
	spans := result.Spans

	if c.config.MaxInjectionDepth > 0 {
		spans, err = c.resolveInjections(ctx, source, result.Injections, 0, c.config.MaxInjectionDepth, spans)
		if err != nil {
			return nil, err
		}
	}

	return spans, nil
}

// resolveInjections walks one level of injections. Offsets inside a
// sub-parse are relative to the injected slice; baseOffset accumulates
// the enclosing starts so appended spans are always document-absolute.
func (c *core) resolveInjections(ctx context.Context, source string, injections []Injection, baseOffset, remainingDepth uint32, out []Span) ([]Span, error) {
	if remainingDepth == 0 {
		return out, nil
	}

	for _, injection := range injections {
		start := int(injection.Start)
		end := int(injection.End)
		if end > len(source) || start >= end {
			continue
		}

		grammar, err := c.resolve(ctx, injection.Language)
		if err != nil {
			return nil, err
		}
		if grammar == nil {
			// Unknown injected language: skip just this injection.
			continue
		}

		injected := source[start:end]
		result := grammar.Parse(injected)

		offset := baseOffset + injection.Start
		for _, span := range result.Spans {
			span.Start += offset
			span.End += offset
			out = append(out, span)
		}

		if len(result.Injections) > 0 {
			out, err = c.resolveInjections(ctx, injected, result.Injections, offset, remainingDepth-1, out)
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
