// Package highlight computes and renders syntax-highlight spans.
//
// A Grammar turns text into spans plus injection points; the core walks
// injections recursively (CSS inside HTML, and so on), translating child
// offsets into document-absolute coordinates. Two façades drive the same
// algorithm: Highlighter for providers that resolve grammars immediately,
// AsyncHighlighter for providers that load them over I/O.
package highlight

import "fmt"

// Span is one annotated byte range from one grammar's evaluation.
// End is exclusive; offsets are relative to the text handed to Parse
// until the core translates them to document coordinates.
type Span struct {
	Start uint32
	End   uint32
	// Capture is the raw category name ("keyword.function", "spell", ...).
	Capture string
	// PatternIndex is the declaration-order ordinal of the rule that
	// produced the span. Higher wins when two spans cover the same range.
	PatternIndex uint32
}

// Injection declares that [Start, End) of the current text should be
// re-parsed as Language.
type Injection struct {
	Start    uint32
	End      uint32
	Language string
	// IncludeChildren is carried through for grammar implementations;
	// the core does not act on it.
	IncludeChildren bool
}

// ParseResult is what one Grammar.Parse call returns.
type ParseResult struct {
	Spans      []Span
	Injections []Injection
}

// UnsupportedLanguageError is the only core-level failure: the primary
// requested language has no grammar. Missing injection grammars are
// skipped silently instead.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q", e.Language)
}
