// Package treesitter provides highlight.Grammar implementations backed
// by in-process tree-sitter parsers.
package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"
	bashlang "github.com/smacker/go-tree-sitter/bash"
	clang "github.com/smacker/go-tree-sitter/c"
	cpplang "github.com/smacker/go-tree-sitter/cpp"
	csslang "github.com/smacker/go-tree-sitter/css"
	golang "github.com/smacker/go-tree-sitter/golang"
	htmllang "github.com/smacker/go-tree-sitter/html"
	python "github.com/smacker/go-tree-sitter/python"
	rust "github.com/smacker/go-tree-sitter/rust"
	toml "github.com/smacker/go-tree-sitter/toml"
	tsxlang "github.com/smacker/go-tree-sitter/typescript/tsx"
	tslang "github.com/smacker/go-tree-sitter/typescript/typescript"
	yaml "github.com/smacker/go-tree-sitter/yaml"
	tsjson "github.com/tree-sitter/tree-sitter-json/bindings/go"

	"github.com/yonasBSD/arborium/lang"
)

// Store is the shared language registry. It is written during setup and
// read-only afterwards, so any number of Providers forked from it can
// look up languages without locking.
type Store struct {
	langs map[lang.ID]*sitter.Language
}

// NewStore returns a Store with every bundled language registered.
func NewStore() *Store {
	return &Store{
		langs: map[lang.ID]*sitter.Language{
			lang.Go:         golang.GetLanguage(),
			lang.Rust:       rust.GetLanguage(),
			lang.Python:     python.GetLanguage(),
			lang.JavaScript: tslang.GetLanguage(),
			lang.TypeScript: tslang.GetLanguage(),
			lang.TSX:        tsxlang.GetLanguage(),
			lang.YAML:       yaml.GetLanguage(),
			lang.TOML:       toml.GetLanguage(),
			lang.JSON:       sitter.NewLanguage(tsjson.Language()),
			lang.Bash:       bashlang.GetLanguage(),
			lang.C:          clang.GetLanguage(),
			lang.CPP:        cpplang.GetLanguage(),
			lang.HTML:       htmllang.GetLanguage(),
			lang.CSS:        csslang.GetLanguage(),
		},
	}
}

// NewEmptyStore returns a Store with no languages. Register the ones
// you need before forking Providers from it.
func NewEmptyStore() *Store {
	return &Store{langs: make(map[lang.ID]*sitter.Language)}
}

// Register adds or replaces a language. Not safe to call once Providers
// are in use.
func (s *Store) Register(id lang.ID, language *sitter.Language) {
	s.langs[id] = language
}

func (s *Store) language(id lang.ID) (*sitter.Language, bool) {
	l, ok := s.langs[id]
	return l, ok && l != nil
}

// Languages lists the registered IDs in no particular order.
func (s *Store) Languages() []lang.ID {
	ids := make([]lang.ID, 0, len(s.langs))
	for id := range s.langs {
		ids = append(ids, id)
	}
	return ids
}
