package writer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

// Color modes of the output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UseColor returns whether colored output should be written to the file for
// the given color mode. In auto mode colors are used for terminals unless
// the NO_COLOR environment variable is set.
func UseColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		if os.Getenv("NO_COLOR") != "" || f == nil {
			return false, nil
		}
		return term.IsTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unsupported color mode '%s'", mode)
	}
}
