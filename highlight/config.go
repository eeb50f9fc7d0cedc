package highlight

// DefaultMaxInjectionDepth bounds injection recursion when Config does
// not say otherwise.
const DefaultMaxInjectionDepth = 3

// HTMLFormat selects the markup shape emitted by the HTML renderer.
// The zero value is CustomElements.
type HTMLFormat struct {
	kind   htmlFormatKind
	prefix string
}

type htmlFormatKind int

const (
	customElements htmlFormatKind = iota
	customElementsWithPrefix
	classNames
	classNamesWithPrefix
)

// CustomElements emits compact custom elements: <a-k>fn</a-k>.
func CustomElements() HTMLFormat { return HTMLFormat{kind: customElements} }

// CustomElementsWithPrefix emits custom elements with a caller-chosen
// prefix: <code-k>fn</code-k>.
func CustomElementsWithPrefix(prefix string) HTMLFormat {
	return HTMLFormat{kind: customElementsWithPrefix, prefix: prefix}
}

// ClassNames emits traditional spans: <span class="keyword">fn</span>.
func ClassNames() HTMLFormat { return HTMLFormat{kind: classNames} }

// ClassNamesWithPrefix emits namespaced classes:
// <span class="arb-keyword">fn</span>.
func ClassNamesWithPrefix(prefix string) HTMLFormat {
	return HTMLFormat{kind: classNamesWithPrefix, prefix: prefix}
}

// Config is immutable per highlighter instance.
type Config struct {
	// MaxInjectionDepth limits injection recursion. 0 disables
	// injection resolution entirely.
	MaxInjectionDepth uint32
	// HTMLFormat selects the HTML markup shape.
	HTMLFormat HTMLFormat
}

// DefaultConfig returns the defaults: depth 3, custom elements.
func DefaultConfig() Config {
	return Config{MaxInjectionDepth: DefaultMaxInjectionDepth}
}
