package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/retroenv/gbinspect/internal/cartridge"
)

const nameWidth = 16

var (
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Charple.Hex())).Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Malibu.Hex())).Width(nameWidth)
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Guac.Hex()))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Cheeky.Hex()))
)

// WriteText writes the metadata as aligned name and value pairs.
func WriteText(w io.Writer, file string, m cartridge.Metadata, color bool) error {
	if file != "" {
		title := file
		if color {
			title = fileStyle.Render(file)
		}
		if _, err := fmt.Fprintln(w, title); err != nil {
			return fmt.Errorf("writing file name: %w", err)
		}
	}

	for _, r := range rows(m) {
		line := fmt.Sprintf("%-*s%s", nameWidth, r.name, r.value)
		if color {
			line = nameStyle.Render(r.name) + valueStyle(r).Render(r.value)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
	}
	return nil
}

func valueStyle(r row) lipgloss.Style {
	switch r.value {
	case "false", cartridge.Unknown:
		return invalidStyle
	case "true":
		return validStyle
	default:
		return lipgloss.NewStyle()
	}
}
