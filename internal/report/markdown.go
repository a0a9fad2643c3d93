package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/retroenv/gbinspect/internal/cartridge"
)

const markdownWidth = 80

// Markdown returns the metadata as markdown table.
func Markdown(file string, m cartridge.Metadata) string {
	var b strings.Builder
	if file != "" {
		fmt.Fprintf(&b, "# %s\n\n", file)
	}
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	for _, r := range rows(m) {
		fmt.Fprintf(&b, "| %s | %s |\n", r.name, escapeCell(r.value))
	}
	return b.String()
}

// WriteMarkdown writes the metadata as markdown, rendered for the terminal
// if color is enabled.
func WriteMarkdown(w io.Writer, file string, m cartridge.Metadata, color bool) error {
	md := Markdown(file, m)
	if color {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(markdownWidth),
		)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		md, err = renderer.Render(md)
		if err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}
	}

	if _, err := io.WriteString(w, md); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	if s == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
