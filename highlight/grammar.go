package highlight

// Grammar parses text into spans and injection points. Parse is always
// synchronous; the potentially slow part of highlighting is obtaining
// the grammar, never using it.
//
// Expected implementers: in-process tree-sitter grammars, dynamically
// loaded plugin wrappers, and test fakes.
type Grammar interface {
	Parse(text string) ParseResult
}

// GrammarProvider resolves language names to grammars. This is the only
// suspension point in the pipeline.
//
// Get returns one of three shapes:
//
//   - grammar non-nil: resolved immediately. In-process providers must
//     always take this path.
//   - grammar nil, pending nil: the language is unknown.
//   - pending non-nil: the grammar is still loading; the channel delivers
//     it when ready (nil on the channel means the load failed).
//
// Highlighter panics if a provider it drives ever returns a pending
// channel; AsyncHighlighter awaits it.
type GrammarProvider interface {
	Get(language string) (grammar Grammar, pending <-chan Grammar)
}

// GrammarFunc adapts a parse function into a Grammar.
type GrammarFunc func(text string) ParseResult

func (f GrammarFunc) Parse(text string) ParseResult { return f(text) }
