package writer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

// styles of the colored listing.
type styles struct {
	depth   lipgloss.Style
	address lipgloss.Style
	bytes   lipgloss.Style
	label   lipgloss.Style
	comment lipgloss.Style

	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

func newStyles() *styles {
	return &styles{
		depth:   lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Squid.Hex())),
		address: lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Malibu.Hex())),
		bytes:   lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Charcoal.Hex())),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Zest.Hex())).Bold(true),
		comment: lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Guac.Hex())),

		lexer:     assemblyLexer(),
		style:     chromastyles.Get("monokai"),
		formatter: terminalFormatter(),
	}
}

// assemblyLexer returns an assembly lexer, or nil if none is registered.
func assemblyLexer() chroma.Lexer {
	for _, name := range []string{"nasm", "gas"} {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

func terminalFormatter() chroma.Formatter {
	if formatter := formatters.Get("terminal256"); formatter != nil {
		return formatter
	}
	return formatters.Fallback
}

// highlight applies syntax highlighting to an instruction. The plain code is
// returned if highlighting fails.
func (s *styles) highlight(code string) string {
	if s.lexer == nil {
		return code
	}

	iterator, err := s.lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := s.formatter.Format(&buf, s.style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
