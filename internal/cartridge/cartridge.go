// Package cartridge derives human readable cartridge metadata from the raw
// header fields.
package cartridge

import (
	"bytes"
	"strings"

	"github.com/retroenv/gbinspect/internal/header"
)

// Families of memory bank controllers that change the size interpretation.
const (
	mbc1Family = "MBC1"
	mbc2Family = "MBC2"
)

// Metadata is the analysis result of one cartridge image.
type Metadata struct {
	Title         string `json:"title"`
	Valid         bool   `json:"valid_file"`
	Version       int    `json:"version"`
	Japan         bool   `json:"japan"`
	Super         bool   `json:"super"`
	Color         bool   `json:"color"`
	CartridgeType string `json:"card_type"`
	ROMBanks      int    `json:"rom_bank"`
	ExternalRAM   int    `json:"external_ram"`

	EntryPoint          int  `json:"entry_point"`
	GlobalChecksumValid bool `json:"global_checksum_valid"`
}

// Inspect parses the header of a cartridge image and derives its metadata.
// Images that are too short to contain a header are reported as invalid.
func Inspect(data []byte) Metadata {
	fields, err := header.Parse(data)
	if err != nil {
		return Metadata{}
	}

	m := Derive(fields)
	m.GlobalChecksumValid = fields.ValidGlobalChecksum(data)
	return m
}

// Derive computes the metadata of the header fields.
func Derive(f *header.Fields) Metadata {
	typ := TypeLabel(f.CartridgeType)

	return Metadata{
		Title:         Title(f.Title),
		Valid:         f.Valid(),
		Version:       int(f.MaskROMVersion),
		Japan:         IsJapan(f.DestinationCode),
		Super:         IsSuper(f.SGBFlag),
		Color:         IsColor(f.CGBFlag),
		CartridgeType: typ,
		ROMBanks:      ROMBanks(typ, f.ROMSizeCode),
		ExternalRAM:   ExternalRAM(typ, f.RAMSizeCode),
		EntryPoint:    header.EntryPointOffset,
	}
}

// Title decodes the title bytes, cut at the first NUL byte.
func Title(title [16]byte) string {
	b := title[:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.ToValidUTF8(string(b), "�")
}

// IsSuper returns whether the SGB flag marks Super Game Boy support.
func IsSuper(flag byte) bool {
	return flag == 0x03
}

// IsColor returns whether the CGB flag marks Game Boy Color support. Only the
// exact value 0x80 is accepted, CGB-only cartridges using 0xC0 are not.
func IsColor(flag byte) bool {
	return flag == 0x80
}

// IsJapan returns whether the destination code is Japanese.
func IsJapan(destination byte) bool {
	return destination == 0x00
}

// TypeLabel returns the label of the cartridge type code or Unknown.
func TypeLabel(code byte) string {
	label, ok := cartridgeTypes[code]
	if !ok {
		return Unknown
	}
	return label
}

// ROMBanks returns the number of ROM banks for the ROM size code or
// UnknownROMBanks.
func ROMBanks(typeLabel string, code byte) int {
	if strings.Contains(typeLabel, mbc1Family) {
		if banks, ok := mbc1ROMBanks[code]; ok {
			return banks
		}
	}

	banks, ok := romBanks[code]
	if !ok {
		return UnknownROMBanks
	}
	return banks
}

// ExternalRAM returns the external RAM size in bytes for the RAM size code
// or UnknownRAMSize. MBC2 cartridges always report their built-in RAM.
func ExternalRAM(typeLabel string, code byte) int {
	if strings.Contains(typeLabel, mbc2Family) {
		return mbc2RAMSize
	}

	size, ok := ramSizes[code]
	if !ok {
		return UnknownRAMSize
	}
	return size * kilobyte
}
