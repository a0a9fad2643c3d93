// Package image provides a bounds checked read-only view over a cartridge image.
package image

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for any read that reaches past the end of the image.
var ErrOutOfBounds = errors.New("offset out of bounds")

// View is a read-only view over the bytes of a cartridge image.
// The underlying buffer is never modified.
type View struct {
	data []byte
}

// New returns a view over the passed data. The caller must not modify
// the data afterwards.
func New(data []byte) View {
	return View{data: data}
}

// Len returns the size of the image in bytes.
func (v View) Len() int {
	return len(v.data)
}

// Contains returns whether the offset is inside the image.
func (v View) Contains(offset int) bool {
	return offset >= 0 && offset < len(v.data)
}

// Byte reads a single byte at the given offset.
func (v View) Byte(offset int) (byte, error) {
	if !v.Contains(offset) {
		return 0, fmt.Errorf("reading byte at offset 0x%04x: %w", offset, ErrOutOfBounds)
	}
	return v.data[offset], nil
}

// Uint16 reads a little-endian word at the given offset.
func (v View) Uint16(offset int) (uint16, error) {
	b, err := v.Slice(offset, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[1])<<8 | uint16(b[0]), nil
}

// Slice returns length bytes starting at offset. The returned slice shares
// memory with the image and has its capacity capped so that appends can not
// write into the image.
func (v View) Slice(offset, length int) ([]byte, error) {
	if length < 0 || offset < 0 || offset > len(v.data)-length {
		return nil, fmt.Errorf("reading %d bytes at offset 0x%04x: %w", length, offset, ErrOutOfBounds)
	}
	return v.data[offset : offset+length : offset+length], nil
}
