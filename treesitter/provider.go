package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yonasBSD/arborium/highlight"
	"github.com/yonasBSD/arborium/lang"
)

// Provider resolves language names to tree-sitter grammars. A Provider
// owns one parser and is not safe for concurrent use; call Fork to get
// an independent Provider sharing the same Store for another goroutine.
//
// Languages are in-process, so Get always answers immediately and the
// pending channel is never used. Blocking highlighters work directly on
// a Provider without any suspension machinery.
type Provider struct {
	store    *Store
	parser   *sitter.Parser
	grammars map[lang.ID]highlight.Grammar
}

// NewProvider forks a Provider from store.
func NewProvider(store *Store) *Provider {
	return &Provider{
		store:    store,
		parser:   sitter.NewParser(),
		grammars: make(map[lang.ID]highlight.Grammar),
	}
}

// Fork returns a new Provider over the same Store with its own parser
// and grammar cache.
func (p *Provider) Fork() *Provider {
	return NewProvider(p.store)
}

// Get implements highlight.GrammarProvider. Aliases like "js" or "yml"
// resolve to their canonical language.
func (p *Provider) Get(language string) (highlight.Grammar, <-chan highlight.Grammar) {
	id := lang.Normalize(language)
	if g, ok := p.grammars[id]; ok {
		return g, nil
	}
	l, ok := p.store.language(id)
	if !ok {
		return nil, nil
	}
	g := &grammar{parser: p.parser, language: l, id: id}
	p.grammars[id] = g
	return g, nil
}
