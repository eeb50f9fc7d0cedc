// Package theme maps the open-ended vocabulary of grammar capture names
// onto a small closed set of rendering slots, and carries the per-slot
// styles used by the ANSI renderer.
//
// Capture names arrive from many query dialects (keyword.function,
// include, markup.heading.2, ...). All of them collapse onto one of the
// slots below; adjacent spans sharing a slot are later coalesced into a
// single run by the renderers.
package theme

import "strings"

// Slot is one rendering category. Themes define one style per slot.
type Slot int

const (
	Keyword Slot = iota
	Function
	String
	Comment
	Type
	Variable
	Constant
	Number
	Operator
	Punctuation
	Property
	Attribute
	Tag
	Macro
	Label
	Namespace
	Constructor
	Title
	Strong
	Emphasis
	Link
	Literal
	Strikethrough
	DiffAdd
	DiffDelete
	Embedded
	Error
	// None produces no markup and no ANSI styling.
	None

	// SlotCount is the number of styled slots (None excluded).
	SlotCount = int(None)
)

var slotTags = [...]string{
	Keyword:       "k",
	Function:      "f",
	String:        "s",
	Comment:       "c",
	Type:          "t",
	Variable:      "v",
	Constant:      "co",
	Number:        "n",
	Operator:      "o",
	Punctuation:   "p",
	Property:      "pr",
	Attribute:     "at",
	Tag:           "tg",
	Macro:         "m",
	Label:         "l",
	Namespace:     "ns",
	Constructor:   "cr",
	Title:         "tt",
	Strong:        "st",
	Emphasis:      "em",
	Link:          "tu",
	Literal:       "tl",
	Strikethrough: "tx",
	DiffAdd:       "da",
	DiffDelete:    "dd",
	Embedded:      "eb",
	Error:         "er",
}

var slotNames = [...]string{
	Keyword:       "keyword",
	Function:      "function",
	String:        "string",
	Comment:       "comment",
	Type:          "type",
	Variable:      "variable",
	Constant:      "constant",
	Number:        "number",
	Operator:      "operator",
	Punctuation:   "punctuation",
	Property:      "property",
	Attribute:     "attribute",
	Tag:           "tag",
	Macro:         "macro",
	Label:         "label",
	Namespace:     "namespace",
	Constructor:   "constructor",
	Title:         "title",
	Strong:        "strong",
	Emphasis:      "emphasis",
	Link:          "link",
	Literal:       "literal",
	Strikethrough: "strikethrough",
	DiffAdd:       "diff-add",
	DiffDelete:    "diff-delete",
	Embedded:      "embedded",
	Error:         "error",
}

// Tag returns the short renderer-facing tag for s ("k", "f", ...).
// None has no tag.
func (s Slot) Tag() (string, bool) {
	if s < 0 || s >= None {
		return "", false
	}
	return slotTags[s], true
}

// Name returns the CSS class name for s ("keyword", "diff-add", ...).
func (s Slot) Name() (string, bool) {
	if s < 0 || s >= None {
		return "", false
	}
	return slotNames[s], true
}

// Index returns the numeric theme style index for s. The ANSI renderer
// keys its reconciliation on this index. None has no index.
func (s Slot) Index() (int, bool) {
	if s < 0 || s >= None {
		return 0, false
	}
	return int(s), true
}

// TagToName resolves a short tag back to its class name.
func TagToName(tag string) (string, bool) {
	for s, t := range slotTags {
		if t == tag {
			return slotNames[s], true
		}
	}
	return "", false
}

// TagForCapture maps a capture name straight to its short tag.
// Returns false for captures that produce no styling.
func TagForCapture(capture string) (string, bool) {
	return CaptureToSlot(capture).Tag()
}

var captureSlots = map[string]Slot{
	// Keywords, including nvim-treesitter legacy names.
	"keyword":                     Keyword,
	"keyword.conditional":         Keyword,
	"keyword.coroutine":           Keyword,
	"keyword.debug":               Keyword,
	"keyword.exception":           Keyword,
	"keyword.function":            Keyword,
	"keyword.import":              Keyword,
	"keyword.operator":            Keyword,
	"keyword.repeat":              Keyword,
	"keyword.return":              Keyword,
	"keyword.type":                Keyword,
	"keyword.modifier":            Keyword,
	"keyword.directive":           Keyword,
	"keyword.storage":             Keyword,
	"keyword.control":             Keyword,
	"keyword.control.conditional": Keyword,
	"keyword.control.repeat":      Keyword,
	"keyword.control.import":      Keyword,
	"keyword.control.return":      Keyword,
	"keyword.control.exception":   Keyword,
	"include":                     Keyword,
	"conditional":                 Keyword,
	"repeat":                      Keyword,
	"exception":                   Keyword,
	"storageclass":                Keyword,
	"preproc":                     Keyword,
	"define":                      Keyword,
	"structure":                   Keyword,

	"function":            Function,
	"function.builtin":    Function,
	"function.method":     Function,
	"function.definition": Function,
	"function.call":       Function,
	"function.special":    Function,
	"method":              Function,
	"method.call":         Function,

	"string":                String,
	"string.special":        String,
	"string.special.symbol": String,
	"string.special.path":   String,
	"string.special.url":    String,
	"string.escape":         String,
	"string.regexp":         String,
	"string.regex":          String,
	"character":             String,
	"character.special":     String,
	"escape":                String,

	"comment":               Comment,
	"comment.documentation": Comment,
	"comment.line":          Comment,
	"comment.block":         Comment,
	"comment.error":         Comment,
	"comment.warning":       Comment,
	"comment.note":          Comment,
	"comment.todo":          Comment,

	"type":              Type,
	"type.builtin":      Type,
	"type.qualifier":    Type,
	"type.definition":   Type,
	"type.enum":         Type,
	"type.enum.variant": Type,
	"type.parameter":    Type,

	"variable":              Variable,
	"variable.builtin":      Variable,
	"variable.parameter":    Variable,
	"variable.member":       Variable,
	"variable.other":        Variable,
	"variable.other.member": Variable,
	"parameter":             Variable,
	"field":                 Variable,

	"constant":                 Constant,
	"constant.builtin":         Constant,
	"constant.builtin.boolean": Constant,
	"boolean":                  Constant,

	"number":           Number,
	"constant.numeric": Number,
	"float":            Number,
	"number.float":     Number,

	"operator": Operator,

	"punctuation":            Punctuation,
	"punctuation.bracket":    Punctuation,
	"punctuation.delimiter":  Punctuation,
	"punctuation.special":    Punctuation,
	"markup.list":            Punctuation,
	"markup.list.checked":    Punctuation,
	"markup.list.unchecked":  Punctuation,
	"markup.list.numbered":   Punctuation,
	"markup.list.unnumbered": Punctuation,
	"markup.quote":           Punctuation,

	"property":         Property,
	"property.builtin": Property,

	"attribute":         Attribute,
	"attribute.builtin": Attribute,

	"tag":           Tag,
	"tag.delimiter": Tag,
	"tag.error":     Tag,
	"tag.attribute": Tag,
	"tag.builtin":   Tag,

	"macro":          Macro,
	"function.macro": Macro,
	"preproc.macro":  Macro,

	"label": Label,

	"namespace": Namespace,
	"module":    Namespace,

	"constructor":         Constructor,
	"constructor.builtin": Constructor,

	"text.title":       Title,
	"markup.heading":   Title,
	"markup.heading.1": Title,
	"markup.heading.2": Title,
	"markup.heading.3": Title,
	"markup.heading.4": Title,
	"markup.heading.5": Title,
	"markup.heading.6": Title,

	"text.strong": Strong,
	"markup.bold": Strong,

	"text.emphasis": Emphasis,
	"markup.italic": Emphasis,

	"text.uri":          Link,
	"text.reference":    Link,
	"markup.link":       Link,
	"markup.link.url":   Link,
	"markup.link.text":  Link,
	"markup.link.label": Link,

	"text.literal":      Literal,
	"markup.raw":        Literal,
	"markup.raw.block":  Literal,
	"markup.raw.inline": Literal,
	"markup.inline":     Literal,

	"text.strikethrough":   Strikethrough,
	"markup.strikethrough": Strikethrough,

	"diff.addition": DiffAdd,
	"diff.plus":     DiffAdd,
	"diff.delta":    DiffAdd,
	"diff.deletion": DiffDelete,
	"diff.minus":    DiffDelete,

	"embedded": Embedded,
	"error":    Error,

	"none":    None,
	"nospell": None,
	"spell":   None,
	"text":    None,
	"markup":  None,
}

// CaptureToSlot maps any capture name to its slot. Exact matches cover
// the common vocabularies; everything else falls back to family-prefix
// matching before defaulting to None.
func CaptureToSlot(capture string) Slot {
	capture = strings.TrimPrefix(capture, "@")

	if slot, ok := captureSlots[capture]; ok {
		return slot
	}

	switch {
	case strings.HasPrefix(capture, "keyword"):
		return Keyword
	case strings.HasPrefix(capture, "function"), strings.HasPrefix(capture, "method"):
		return Function
	case strings.HasPrefix(capture, "string"), strings.HasPrefix(capture, "character"):
		return String
	case strings.HasPrefix(capture, "comment"):
		return Comment
	case strings.HasPrefix(capture, "type"):
		return Type
	case strings.HasPrefix(capture, "variable"), strings.HasPrefix(capture, "parameter"):
		return Variable
	case strings.HasPrefix(capture, "constant"):
		return Constant
	case strings.HasPrefix(capture, "punctuation"):
		return Punctuation
	case strings.HasPrefix(capture, "tag"):
		return Tag
	case strings.HasPrefix(capture, "markup.heading"), strings.HasPrefix(capture, "text.title"):
		return Title
	case strings.HasPrefix(capture, "markup"), strings.HasPrefix(capture, "text"):
		return None
	default:
		return None
	}
}
