// Package header extracts and validates the Game Boy cartridge header that
// occupies the image offsets 0x0100-0x014F.
package header

import (
	"errors"
	"fmt"

	"github.com/retroenv/gbinspect/internal/image"
)

// Header field offsets.
const (
	EntryPointOffset       = 0x0100
	LogoOffset             = 0x0104
	TitleOffset            = 0x0134
	ManufacturerCodeOffset = 0x013F
	CGBFlagOffset          = 0x0143
	NewLicenseeCodeOffset  = 0x0144
	SGBFlagOffset          = 0x0146
	CartridgeTypeOffset    = 0x0147
	ROMSizeOffset          = 0x0148
	RAMSizeOffset          = 0x0149
	DestinationCodeOffset  = 0x014A
	OldLicenseeCodeOffset  = 0x014B
	MaskROMVersionOffset   = 0x014C
	HeaderChecksumOffset   = 0x014D
	GlobalChecksumOffset   = 0x014E

	// Size is the minimum image size that contains a complete header.
	Size = 0x0150

	// checksum range is 0x0134-0x014C inclusive
	checksumStart = TitleOffset
	checksumEnd   = MaskROMVersionOffset
)

// ErrTooShort is returned when the image can not contain a complete header.
var ErrTooShort = errors.New("image too short to contain a cartridge header")

// Logo is the reference bitmap that every licensed cartridge reproduces at 0x0104.
var Logo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Fields contains the raw header fields of a cartridge image.
type Fields struct {
	EntryPoint [4]byte  // 0x0100-0x0103, usually NOP; JP a16
	Logo       [48]byte // 0x0104-0x0133

	// Title spans 0x0134-0x0143. On newer cartridges the last bytes are
	// reused for the manufacturer code and the CGB flag.
	Title            [16]byte
	ManufacturerCode [4]byte // 0x013F-0x0142
	CGBFlag          byte    // 0x0143
	NewLicenseeCode  [2]byte // 0x0144-0x0145
	SGBFlag          byte    // 0x0146
	CartridgeType    byte    // 0x0147
	ROMSizeCode      byte    // 0x0148
	RAMSizeCode      byte    // 0x0149
	DestinationCode  byte    // 0x014A
	OldLicenseeCode  byte    // 0x014B
	MaskROMVersion   byte    // 0x014C
	HeaderChecksum   byte    // 0x014D
	GlobalChecksum   uint16  // 0x014E-0x014F, big-endian

	checksummed [checksumEnd - checksumStart + 1]byte
}

// Parse extracts the header fields from a cartridge image.
func Parse(data []byte) (*Fields, error) {
	hdr, err := image.New(data).Slice(0, Size)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrTooShort, len(data), Size)
	}

	f := &Fields{
		CGBFlag:         hdr[CGBFlagOffset],
		SGBFlag:         hdr[SGBFlagOffset],
		CartridgeType:   hdr[CartridgeTypeOffset],
		ROMSizeCode:     hdr[ROMSizeOffset],
		RAMSizeCode:     hdr[RAMSizeOffset],
		DestinationCode: hdr[DestinationCodeOffset],
		OldLicenseeCode: hdr[OldLicenseeCodeOffset],
		MaskROMVersion:  hdr[MaskROMVersionOffset],
		HeaderChecksum:  hdr[HeaderChecksumOffset],
		GlobalChecksum:  uint16(hdr[GlobalChecksumOffset])<<8 | uint16(hdr[GlobalChecksumOffset+1]),
	}
	copy(f.EntryPoint[:], hdr[EntryPointOffset:])
	copy(f.Logo[:], hdr[LogoOffset:])
	copy(f.Title[:], hdr[TitleOffset:])
	copy(f.ManufacturerCode[:], hdr[ManufacturerCodeOffset:])
	copy(f.NewLicenseeCode[:], hdr[NewLicenseeCodeOffset:])
	copy(f.checksummed[:], hdr[checksumStart:])

	return f, nil
}

// ValidLogo returns whether the logo bitmap matches the reference exactly.
func (f *Fields) ValidLogo() bool {
	return f.Logo == Logo
}

// ValidChecksum returns whether the header checksum byte matches the
// checksum computed over 0x0134-0x014C.
func (f *Fields) ValidChecksum() bool {
	return checksum(f.checksummed[:]) == f.HeaderChecksum
}

// Valid returns whether both the logo and the header checksum are valid.
func (f *Fields) Valid() bool {
	return f.ValidLogo() && f.ValidChecksum()
}

// ValidGlobalChecksum returns whether the 16 bit sum over all image bytes,
// excluding the two checksum bytes, matches the global checksum field.
// The boot ROM does not check it and many cartridges carry a wrong value.
func (f *Fields) ValidGlobalChecksum(data []byte) bool {
	var sum uint16
	for i, b := range data {
		if i == GlobalChecksumOffset || i == GlobalChecksumOffset+1 {
			continue
		}
		sum += uint16(b)
	}
	return sum == f.GlobalChecksum
}

// Checksum computes the header checksum of an image that is at least Size bytes long.
func Checksum(data []byte) (byte, error) {
	if len(data) < Size {
		return 0, fmt.Errorf("%w: got %d bytes, need %d", ErrTooShort, len(data), Size)
	}
	return checksum(data[checksumStart : checksumEnd+1]), nil
}

// checksum wraps around modulo 256 through uint8 arithmetic.
func checksum(data []byte) byte {
	var value byte
	for _, b := range data {
		value = value - b - 1
	}
	return value
}
