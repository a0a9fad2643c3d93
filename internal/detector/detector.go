// Package detector handles cartridge system detection.
package detector

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupportedExtension is returned for files without a cartridge extension.
var ErrUnsupportedExtension = errors.New("extension for this file is unknown or unsupported")

// Detector handles system detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system from the extension of the filename.
// Game Boy Color and Super Game Boy cartridges share the Game Boy system,
// their capabilities are read from the header.
func (d *Detector) Detect(filename string) (arch.System, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".gb", ".gbc", ".cgb", ".sgb":
	default:
		return "", ErrUnsupportedExtension
	}

	system := arch.GameBoy
	d.logger.Debug("Detected system",
		log.Stringer("system", system),
		log.String("file", filename))
	return system, nil
}
