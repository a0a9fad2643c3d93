// Package loader handles cartridge file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
)

// maxImageSize is the size of the largest cartridge, 512 banks of 16 KiB.
const maxImageSize = 512 * 16 * 1024

// Loader handles loading cartridge files from disk.
type Loader struct{}

// New creates a new cartridge loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete cartridge image of the file.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than allowed to detect oversized files
	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("file %s exceeds the maximum cartridge size of %d bytes", path, maxImageSize)
	}
	return data, nil
}
