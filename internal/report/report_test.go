package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/retroenv/gbinspect/internal/cartridge"
	"github.com/retroenv/gbinspect/internal/disasm"
	"github.com/retroenv/gbinspect/internal/header/headertest"
	"github.com/retroenv/gbinspect/internal/writer"
	"github.com/retroenv/retrogolib/assert"
)

func tetris() cartridge.Metadata {
	return cartridge.Inspect(headertest.Tetris())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteText(&buf, "tetris.gb", tetris(), false))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, "tetris.gb", lines[0])
	assert.Equal(t, "Title           TETRIS", lines[1])
	assert.Equal(t, "Valid           true", lines[2])
	assert.Equal(t, "Version         1", lines[3])
	assert.Contains(t, buf.String(), "Cartridge type  ROM ONLY\n")
	assert.Contains(t, buf.String(), "Entry point     0x0100\n")
}

func TestWriteTextUnknownSizes(t *testing.T) {
	m := cartridge.Metadata{
		CartridgeType: cartridge.Unknown,
		ROMBanks:      cartridge.UnknownROMBanks,
		ExternalRAM:   cartridge.UnknownRAMSize,
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteText(&buf, "", m, false))
	assert.Contains(t, buf.String(), "ROM banks       UNKNOWN\n")
	assert.Contains(t, buf.String(), "External RAM    UNKNOWN\n")
	assert.False(t, strings.HasPrefix(buf.String(), "\n"))
}

func TestWriteTextColor(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteText(&buf, "tetris.gb", tetris(), true))
	assert.Contains(t, buf.String(), "TETRIS")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestMarkdown(t *testing.T) {
	md := Markdown("tetris.gb", tetris())
	assert.True(t, strings.HasPrefix(md, "# tetris.gb\n\n| Field | Value |\n"))
	assert.Contains(t, md, "| Title | TETRIS |\n")
	assert.Contains(t, md, "| Cartridge type | ROM ONLY |\n")

	var buf bytes.Buffer
	assert.NoError(t, WriteMarkdown(&buf, "tetris.gb", tetris(), false))
	assert.Equal(t, md, buf.String())
}

func TestWriteMarkdownRendered(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteMarkdown(&buf, "tetris.gb", tetris(), true))
	assert.Contains(t, buf.String(), "TETRIS")
	assert.False(t, strings.Contains(buf.String(), "|-------|"))
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, " ", escapeCell(""))
	assert.Equal(t, `A\|B`, escapeCell("A|B"))
}

func TestWriteJSON(t *testing.T) {
	doc := Document{
		File:     "tetris.gb",
		Metadata: tetris(),
		Instructions: []writer.Entry{
			{Address: "0x0100", Bytes: "00", Instruction: "NOP", Kind: "sequential"},
		},
		Stats: &disasm.Stats{Instructions: 1, Paths: 1},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteJSON(&buf, doc))

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tetris.gb", decoded["file"])

	metadata, ok := decoded["metadata"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "TETRIS", metadata["title"])
	assert.Equal(t, true, metadata["valid_file"])
	assert.Equal(t, "ROM ONLY", metadata["card_type"])
	_, hasError := decoded["error"]
	assert.False(t, hasError)

	buf.Reset()
	assert.NoError(t, WriteJSON(&buf, doc, Document{File: "empty.gb"}))
	var list []Document
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	assert.Len(t, list, 2)
	assert.Equal(t, "empty.gb", list[1].File)
	assert.Nil(t, list[1].Stats)
}
