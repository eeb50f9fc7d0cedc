// Command arborium highlights source code on stdin or from a file and
// writes HTML or ANSI to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"

	"github.com/yonasBSD/arborium/highlight"
	"github.com/yonasBSD/arborium/lang"
	"github.com/yonasBSD/arborium/theme"
	"github.com/yonasBSD/arborium/treesitter"
)

type config struct {
	Lang       string
	Format     string
	Theme      string
	HTMLFormat string
	Prefix     string
	Depth      uint32

	Width    int
	Pad      bool
	TabWidth int
	MarginX  int
	MarginY  int
	PaddingX int
	PaddingY int
	Border   bool
	BaseBG   bool

	ListThemes bool
}

func main() {
	var cfg config
	flag.StringVarP(&cfg.Lang, "lang", "l", "", "source language (default: detect from filename and shebang)")
	flag.StringVarP(&cfg.Format, "format", "f", "ansi", "output format: ansi or html")
	flag.StringVarP(&cfg.Theme, "theme", "t", "nord", "color theme for ansi output (see --list-themes)")
	flag.StringVar(&cfg.HTMLFormat, "html-format", "elements", "html markup style: elements or classes")
	flag.StringVar(&cfg.Prefix, "prefix", "", "prefix for html element or class names")
	flag.Uint32Var(&cfg.Depth, "injection-depth", highlight.DefaultMaxInjectionDepth, "max depth for embedded language highlighting, 0 disables")
	flag.IntVarP(&cfg.Width, "width", "w", 0, "wrap ansi output at this column, 0 disables")
	flag.BoolVar(&cfg.Pad, "pad", false, "pad each ansi line out to the wrap width")
	flag.IntVar(&cfg.TabWidth, "tab-width", 4, "tab stop size")
	flag.IntVar(&cfg.MarginX, "margin-x", 0, "blank columns outside the border")
	flag.IntVar(&cfg.MarginY, "margin-y", 0, "blank rows outside the border")
	flag.IntVar(&cfg.PaddingX, "padding-x", 0, "styled columns inside the border")
	flag.IntVar(&cfg.PaddingY, "padding-y", 0, "styled rows inside the border")
	flag.BoolVar(&cfg.Border, "border", false, "draw a box around ansi output (requires --width)")
	flag.BoolVar(&cfg.BaseBG, "base-style", false, "apply the theme background to unstyled text")
	flag.BoolVar(&cfg.ListThemes, "list-themes", false, "list available themes and exit")
	flag.Parse()

	if cfg.ListThemes {
		listThemes(os.Stdout)
		return
	}

	source, path, err := readSource(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	language := cfg.Lang
	if language == "" {
		language = detectLanguage(path, source)
	}

	out, err := render(cfg, language, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arborium: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func readSource(args []string) (source, path string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}

func detectLanguage(path, source string) string {
	firstLine, _, _ := strings.Cut(source, "\n")
	if path == "" {
		// Stdin has no filename, so only the shebang can help.
		return string(lang.DetectWithShebang("stdin", firstLine))
	}
	return string(lang.DetectWithShebang(path, firstLine))
}

func render(cfg config, language, source string) (string, error) {
	h := highlight.NewHighlighterWithConfig(
		treesitter.NewProvider(treesitter.NewStore()),
		highlight.Config{
			MaxInjectionDepth: cfg.Depth,
			HTMLFormat:        htmlFormat(cfg),
		},
	)

	switch strings.ToLower(cfg.Format) {
	case "html":
		return h.Highlight(language, source)

	case "ansi":
		t, err := theme.FromChroma(cfg.Theme)
		if err != nil {
			return "", fmt.Errorf("invalid --theme: %w", err)
		}
		opts := highlight.ANSIOptions{
			UseThemeBaseStyle: cfg.BaseBG,
			Width:             cfg.Width,
			PadToWidth:        cfg.Pad,
			TabWidth:          cfg.TabWidth,
			MarginX:           cfg.MarginX,
			MarginY:           cfg.MarginY,
			PaddingX:          cfg.PaddingX,
			PaddingY:          cfg.PaddingY,
			Border:            cfg.Border,
		}
		if cfg.Width == 0 && (cfg.Border || cfg.Pad) {
			def := highlight.DefaultANSIOptions()
			opts.Width = def.Width
		}
		return h.HighlightANSI(language, source, t, opts)

	default:
		return "", fmt.Errorf("invalid --format %q (use ansi or html)", cfg.Format)
	}
}

func htmlFormat(cfg config) highlight.HTMLFormat {
	switch strings.ToLower(cfg.HTMLFormat) {
	case "classes":
		if cfg.Prefix != "" {
			return highlight.ClassNamesWithPrefix(cfg.Prefix)
		}
		return highlight.ClassNames()
	default:
		if cfg.Prefix != "" {
			return highlight.CustomElementsWithPrefix(cfg.Prefix)
		}
		return highlight.CustomElements()
	}
}

// listThemes prints each theme name with a small swatch of its keyword,
// function and string colors.
func listThemes(w io.Writer) {
	for _, name := range theme.Names() {
		t, err := theme.FromChroma(name)
		if err != nil {
			continue
		}
		var swatch strings.Builder
		for _, slot := range []theme.Slot{theme.Keyword, theme.Function, theme.String, theme.Comment} {
			style, ok := t.Style(int(slot))
			if !ok || style.Foreground == "" {
				swatch.WriteString("  ")
				continue
			}
			block := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Foreground)).Render("██")
			swatch.WriteString(block)
		}
		fmt.Fprintf(w, "%-28s %s\n", name, swatch.String())
	}
}
