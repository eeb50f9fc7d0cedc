package theme

import (
	"fmt"
	"sort"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// FromChroma derives a Theme from a chroma style registry entry. The
// chroma style supplies the palette; the slot mapping below decides
// which token's colors feed which slot.
func FromChroma(name string) (*Theme, error) {
	requested := strings.TrimSpace(name)
	if requested == "" {
		requested = "nord"
	}

	lookup := normalizeThemeName(requested)
	if !hasTheme(lookup) {
		return nil, fmt.Errorf("unknown theme %q. try one of: %s", requested, strings.Join(themeHints(), ", "))
	}
	style := styles.Get(lookup)
	if style == nil {
		return nil, fmt.Errorf("unknown theme %q. try one of: %s", requested, strings.Join(themeHints(), ", "))
	}

	base := Style{
		Foreground: pickForeground(style, chroma.Text, chroma.Background),
		Background: pickBackground(style, chroma.Background),
	}

	border := Style{Foreground: pickBackground(style, chroma.LineHighlight, chroma.Background)}
	if border.Foreground == "" {
		border.Foreground = pickForeground(style, chroma.Comment)
	}

	t := &Theme{Name: lookup, base: base, border: border}
	for slot, token := range slotTokens {
		if i, ok := slot.Index(); ok {
			t.styles[i] = entryStyle(style.Get(token))
		}
	}

	// Give the strikethrough slot its flag even when the palette has no
	// dedicated token for it.
	if i, ok := Strikethrough.Index(); ok {
		t.styles[i].Strikethrough = true
	}
	if i, ok := Strong.Index(); ok {
		t.styles[i].Bold = true
	}
	if i, ok := Emphasis.Index(); ok {
		t.styles[i].Italic = true
	}

	return t, nil
}

// Names lists every theme FromChroma accepts, sorted.
func Names() []string {
	names := append([]string(nil), styles.Names()...)
	sort.Strings(names)
	return names
}

var slotTokens = map[Slot]chroma.TokenType{
	Keyword:       chroma.Keyword,
	Function:      chroma.NameFunction,
	String:        chroma.LiteralString,
	Comment:       chroma.Comment,
	Type:          chroma.KeywordType,
	Variable:      chroma.NameVariable,
	Constant:      chroma.NameConstant,
	Number:        chroma.LiteralNumber,
	Operator:      chroma.Operator,
	Punctuation:   chroma.Punctuation,
	Property:      chroma.NameProperty,
	Attribute:     chroma.NameAttribute,
	Tag:           chroma.NameTag,
	Macro:         chroma.CommentPreproc,
	Label:         chroma.NameLabel,
	Namespace:     chroma.NameNamespace,
	Constructor:   chroma.NameClass,
	Title:         chroma.GenericHeading,
	Strong:        chroma.GenericStrong,
	Emphasis:      chroma.GenericEmph,
	Link:          chroma.LiteralStringOther,
	Literal:       chroma.LiteralStringBacktick,
	Strikethrough: chroma.Comment,
	DiffAdd:       chroma.GenericInserted,
	DiffDelete:    chroma.GenericDeleted,
	Embedded:      chroma.Text,
	Error:         chroma.Error,
}

func entryStyle(entry chroma.StyleEntry) Style {
	s := Style{
		Bold:      entry.Bold == chroma.Yes,
		Italic:    entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes,
	}
	if entry.Colour.IsSet() {
		s.Foreground = entry.Colour.String()
	}
	return s
}

func pickForeground(style *chroma.Style, tokens ...chroma.TokenType) string {
	for _, token := range tokens {
		entry := style.Get(token)
		if entry.Colour.IsSet() {
			return entry.Colour.String()
		}
	}
	return ""
}

func pickBackground(style *chroma.Style, tokens ...chroma.TokenType) string {
	for _, token := range tokens {
		entry := style.Get(token)
		if entry.Background.IsSet() {
			return entry.Background.String()
		}
	}
	return ""
}

func hasTheme(name string) bool {
	for _, n := range styles.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func normalizeThemeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "solarized-dark", "solarized_dark":
		return "solarized-dark"
	case "solarized-light", "solarized_light":
		return "solarized-light"
	case "github-dark", "github_dark":
		return "github-dark"
	case "catppuccin", "catppuccin-mocha":
		return "catppuccin-mocha"
	case "tokyo-night", "tokyonight":
		return "tokyonight-night"
	default:
		return lower
	}
}

func themeHints() []string {
	hints := []string{"nord", "dracula", "monokai", "github", "solarized-dark", "catppuccin-mocha"}
	out := hints[:0]
	for _, h := range hints {
		if hasTheme(h) {
			out = append(out, h)
		}
	}
	return out
}
