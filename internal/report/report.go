// Package report renders the analysis result of a cartridge image.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/retroenv/gbinspect/internal/cartridge"
	"github.com/retroenv/gbinspect/internal/disasm"
	"github.com/retroenv/gbinspect/internal/writer"
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Document is the complete result of analyzing one file.
type Document struct {
	File         string             `json:"file"`
	Metadata     cartridge.Metadata `json:"metadata"`
	Instructions []writer.Entry     `json:"instructions,omitempty"`
	Stats        *disasm.Stats      `json:"stats,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// row is a single field of the metadata report.
type row struct {
	name  string
	value string
}

// rows returns the metadata fields in display order.
func rows(m cartridge.Metadata) []row {
	return []row{
		{"Title", m.Title},
		{"Valid", strconv.FormatBool(m.Valid)},
		{"Version", strconv.Itoa(m.Version)},
		{"Japan", strconv.FormatBool(m.Japan)},
		{"Super Game Boy", strconv.FormatBool(m.Super)},
		{"Game Boy Color", strconv.FormatBool(m.Color)},
		{"Cartridge type", m.CartridgeType},
		{"ROM banks", romBanks(m.ROMBanks)},
		{"External RAM", externalRAM(m.ExternalRAM)},
		{"Entry point", fmt.Sprintf("0x%04X", m.EntryPoint)},
		{"Global checksum", strconv.FormatBool(m.GlobalChecksumValid)},
	}
}

func romBanks(banks int) string {
	if banks == cartridge.UnknownROMBanks {
		return cartridge.Unknown
	}
	return strconv.Itoa(banks)
}

func externalRAM(size int) string {
	if size == cartridge.UnknownRAMSize {
		return cartridge.Unknown
	}
	return fmt.Sprintf("%d bytes", size)
}

// WriteJSON writes the documents as indented JSON. A single document is
// written as object, multiple documents as array.
func WriteJSON(w io.Writer, docs ...Document) error {
	var v any = docs
	if len(docs) == 1 {
		v = docs[0]
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
