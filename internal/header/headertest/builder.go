// Package headertest builds synthetic cartridge images for tests.
package headertest

import (
	"github.com/retroenv/gbinspect/internal/header"
)

// Options configures a synthetic cartridge image.
type Options struct {
	Size          int // image size, at least header.Size
	Title         string
	CGBFlag       byte
	SGBFlag       byte
	CartridgeType byte
	ROMSizeCode   byte
	RAMSizeCode   byte
	Destination   byte
	OldLicensee   byte
	Version       byte
	Code          map[int][]byte // code bytes to place at the given offsets
	BadLogo       bool
}

// Build returns an image with a reference logo and a correct header checksum.
// Code is written before the checksum is computed so that it can overlap the header.
func Build(opts Options) []byte {
	size := max(opts.Size, header.Size)
	data := make([]byte, size)

	// NOP; JP $0150
	copy(data[header.EntryPointOffset:], []byte{0x00, 0xC3, 0x50, 0x01})
	copy(data[header.LogoOffset:], header.Logo[:])
	if opts.BadLogo {
		data[header.LogoOffset] ^= 0xFF
	}

	copy(data[header.TitleOffset:header.TitleOffset+16], opts.Title)
	if opts.CGBFlag != 0 {
		data[header.CGBFlagOffset] = opts.CGBFlag
	}
	data[header.SGBFlagOffset] = opts.SGBFlag
	data[header.CartridgeTypeOffset] = opts.CartridgeType
	data[header.ROMSizeOffset] = opts.ROMSizeCode
	data[header.RAMSizeOffset] = opts.RAMSizeCode
	data[header.DestinationCodeOffset] = opts.Destination
	data[header.OldLicenseeCodeOffset] = opts.OldLicensee
	data[header.MaskROMVersionOffset] = opts.Version

	for offset, code := range opts.Code {
		copy(data[offset:], code)
	}

	// the length was ensured above
	sum, _ := header.Checksum(data)
	data[header.HeaderChecksumOffset] = sum
	return data
}

// Tetris returns the 0x0150 byte header of Tetris (World) Rev 1.
func Tetris() []byte {
	data := Build(Options{
		Title:       "TETRIS",
		OldLicensee: 0x01,
		Version:     0x01,
	})
	data[header.GlobalChecksumOffset] = 0x16
	data[header.GlobalChecksumOffset+1] = 0xBF
	return data
}
