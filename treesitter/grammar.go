package treesitter

import (
	"context"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yonasBSD/arborium/highlight"
	"github.com/yonasBSD/arborium/lang"
)

// grammar wraps one tree-sitter language behind the highlight.Grammar
// interface. It shares the owning Provider's parser, so it inherits the
// Provider's single-goroutine contract.
type grammar struct {
	parser   *sitter.Parser
	language *sitter.Language
	id       lang.ID
}

func (g *grammar) Parse(text string) highlight.ParseResult {
	if text == "" {
		return highlight.ParseResult{}
	}

	g.parser.SetLanguage(g.language)
	tree, err := g.parser.ParseCtx(context.Background(), nil, []byte(text))
	if err != nil || tree == nil {
		return highlight.ParseResult{}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return highlight.ParseResult{}
	}

	var result highlight.ParseResult
	collectLeafSpans(root, []byte(text), g.id, "", "", &result.Spans)
	if g.id == lang.HTML {
		collectHTMLInjections(root, &result.Injections)
	}
	return result
}

// captureRank orders captures for tie-breaking when two spans cover the
// same byte range. Later, more specific classifications rank higher.
var captureRank = map[string]uint32{
	"punctuation": 1,
	"operator":    2,
	"variable":    3,
	"constant":    4,
	"number":      4,
	"type":        5,
	"function":    5,
	"property":    5,
	"attribute":   5,
	"tag":         5,
	"keyword":     6,
	"string":      7,
	"comment":     8,
	"error":       9,
}

func collectLeafSpans(node *sitter.Node, src []byte, id lang.ID, parentType, grandType string, out *[]highlight.Span) {
	if node == nil {
		return
	}

	if node.ChildCount() == 0 {
		start := node.StartByte()
		end := node.EndByte()
		if start >= end || int(end) > len(src) {
			return
		}
		capture := classifyLeaf(id, node, parentType, grandType, src[start:end])
		if capture == "" {
			return
		}
		*out = append(*out, highlight.Span{
			Start:        start,
			End:          end,
			Capture:      capture,
			PatternIndex: captureRank[capture],
		})
		return
	}

	nextParent := strings.ToLower(node.Type())
	for i := 0; i < int(node.ChildCount()); i++ {
		collectLeafSpans(node.Child(i), src, id, nextParent, parentType, out)
	}
}

// classifyLeaf names the capture for one leaf node. Node types differ
// per grammar, so classification leans on substring conventions shared
// across the bundled grammars plus per-language context tables. An
// empty capture means the leaf stays unstyled.
func classifyLeaf(id lang.ID, node *sitter.Node, parentType, grandType string, text []byte) string {
	nodeType := strings.ToLower(node.Type())
	lexeme := strings.ToLower(strings.TrimSpace(string(text)))

	if nodeType == "error" || strings.Contains(nodeType, "invalid") {
		return "error"
	}
	if strings.Contains(nodeType, "comment") {
		return "comment"
	}
	if strings.Contains(nodeType, "string") || strings.Contains(nodeType, "char") || strings.Contains(nodeType, "heredoc") {
		// JSON object keys read better as property names than as
		// string literals.
		if id == lang.JSON && (parentType == "pair" || grandType == "pair") {
			return "property"
		}
		return "string"
	}
	if strings.Contains(nodeType, "number") || strings.Contains(nodeType, "integer") || strings.Contains(nodeType, "float") || strings.Contains(nodeType, "numeric") {
		return "number"
	}
	if lexeme == "true" || lexeme == "false" || lexeme == "null" || lexeme == "nil" || lexeme == "none" {
		return "constant"
	}

	if strings.HasSuffix(nodeType, "keyword") {
		return "keyword"
	}

	if strings.Contains(nodeType, "type_identifier") || strings.Contains(nodeType, "primitive_type") || strings.Contains(nodeType, "predefined_type") {
		return "type"
	}

	if nodeType == "tag_name" {
		return "tag"
	}
	if nodeType == "attribute_name" {
		return "attribute"
	}
	if nodeType == "property_name" {
		return "property"
	}

	if isIdentifierNode(nodeType) {
		if isTypeContext(id, parentType, grandType) {
			return "type"
		}
		if isFunctionContext(id, parentType, grandType) {
			return "function"
		}
		if isLikelyConstant(lexeme) {
			return "constant"
		}
	}

	if keywordSet[lexeme] {
		return "keyword"
	}
	if operatorSet[lexeme] {
		return "operator"
	}

	if !node.IsNamed() {
		if looksLikeOperator(lexeme) {
			return "operator"
		}
		if strings.HasSuffix(nodeType, "keyword") {
			return "keyword"
		}
	}

	return ""
}

// collectHTMLInjections finds embedded script and style payloads. The
// raw_text child of a script or style element carries the foreign
// source verbatim.
func collectHTMLInjections(node *sitter.Node, out *[]highlight.Injection) {
	if node == nil {
		return
	}

	nodeType := node.Type()
	if nodeType == "script_element" || nodeType == "style_element" {
		language := lang.JavaScript
		if nodeType == "style_element" {
			language = lang.CSS
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child == nil || child.Type() != "raw_text" {
				continue
			}
			if child.StartByte() >= child.EndByte() {
				continue
			}
			*out = append(*out, highlight.Injection{
				Start:           child.StartByte(),
				End:             child.EndByte(),
				Language:        string(language),
				IncludeChildren: true,
			})
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectHTMLInjections(node.Child(i), out)
	}
}

func isIdentifierNode(nodeType string) bool {
	return nodeType == "identifier" || nodeType == "property_identifier" || strings.HasSuffix(nodeType, "identifier") || strings.HasSuffix(nodeType, "name")
}

func isFunctionContext(id lang.ID, parentType, grandType string) bool {
	if strings.Contains(parentType, "function") || strings.Contains(parentType, "method") || strings.Contains(parentType, "call") || strings.Contains(grandType, "function") || strings.Contains(grandType, "method") || strings.Contains(grandType, "call") {
		return true
	}

	if set, ok := functionContextByLang[id]; ok && (set[parentType] || set[grandType]) {
		return true
	}
	return false
}

func isTypeContext(id lang.ID, parentType, grandType string) bool {
	if strings.Contains(parentType, "type") || strings.Contains(grandType, "type") || strings.Contains(parentType, "class") || strings.Contains(parentType, "struct") || strings.Contains(parentType, "interface") || strings.Contains(parentType, "trait") || strings.Contains(grandType, "class") || strings.Contains(grandType, "struct") || strings.Contains(grandType, "interface") || strings.Contains(grandType, "trait") {
		return true
	}

	if set, ok := typeContextByLang[id]; ok && (set[parentType] || set[grandType]) {
		return true
	}
	return false
}

func isLikelyConstant(s string) bool {
	if len(s) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		switch {
		case r == '_':
			continue
		case unicode.IsDigit(r):
			continue
		case unicode.IsLetter(r):
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		default:
			return false
		}
	}
	return hasLetter
}

func looksLikeOperator(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~', ':', ';', ',', '.', '?', '(', ')', '[', ']', '{', '}':
		default:
			return false
		}
	}
	return true
}

var functionContextByLang = map[lang.ID]map[string]bool{
	lang.Go: {
		"function_declaration": true,
		"method_declaration":   true,
		"call_expression":      true,
		"selector_expression":  true,
	},
	lang.Rust: {
		"function_item":    true,
		"call_expression":  true,
		"field_expression": true,
	},
	lang.JavaScript: {
		"function_declaration": true,
		"method_definition":    true,
		"call_expression":      true,
		"member_expression":    true,
	},
	lang.TypeScript: {
		"function_declaration": true,
		"method_definition":    true,
		"call_expression":      true,
		"member_expression":    true,
	},
	lang.TSX: {
		"function_declaration": true,
		"method_definition":    true,
		"call_expression":      true,
		"member_expression":    true,
	},
	lang.Python: {
		"function_definition": true,
		"call":                true,
	},
	lang.C: {
		"function_definition": true,
		"call_expression":     true,
	},
	lang.CPP: {
		"function_definition": true,
		"call_expression":     true,
	},
}

var typeContextByLang = map[lang.ID]map[string]bool{
	lang.Go: {
		"type_spec":             true,
		"type_declaration":      true,
		"parameter_declaration": true,
		"var_declaration":       true,
	},
	lang.Rust: {
		"struct_item": true,
		"enum_item":   true,
		"trait_item":  true,
		"type_item":   true,
	},
	lang.JavaScript: {
		"class_declaration": true,
		"type_annotation":   true,
	},
	lang.TypeScript: {
		"interface_declaration":  true,
		"type_alias_declaration": true,
		"type_annotation":        true,
		"class_declaration":      true,
	},
	lang.TSX: {
		"interface_declaration":  true,
		"type_alias_declaration": true,
		"type_annotation":        true,
		"class_declaration":      true,
	},
	lang.Python: {
		"class_definition": true,
	},
}

var keywordSet = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "case": true,
	"catch": true, "class": true, "const": true, "continue": true, "def": true,
	"default": true, "defer": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "fallthrough": true, "finally": true,
	"fn": true, "for": true, "from": true, "func": true, "function": true,
	"if": true, "impl": true, "import": true, "in": true, "include": true,
	"interface": true, "let": true, "loop": true, "match": true, "mod": true,
	"module": true, "mut": true, "namespace": true, "new": true, "package": true,
	"pub": true, "raise": true, "return": true, "struct": true, "switch": true,
	"trait": true, "try": true, "type": true, "use": true, "var": true,
	"while": true, "with": true, "yield": true,
}

var operatorSet = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"=": true, "==": true, "!=": true, "<": true, "<=": true,
	">": true, ">=": true, "&&": true, "||": true, "!": true,
	"&": true, "|": true, "^": true, "~": true, "->": true,
	"=>": true, "::": true, ":": true, ";": true, ",": true,
	".": true, "?": true, "(": true, ")": true, "[": true,
	"]": true, "{": true, "}": true,
}
