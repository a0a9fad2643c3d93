package writer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/retroenv/gbinspect/internal/arch/sm83"
	"github.com/retroenv/gbinspect/internal/disasm"
	"github.com/retroenv/gbinspect/internal/image"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testProgram = []byte{
	0xCD, 0x04, 0x00, // 0: CALL $0004
	0xC9,             // 3: RET
	0x3C,             // 4: INC A
	0xC9,             // 5: RET
}

func walk(t *testing.T, data []byte, sink disasm.Sink) {
	t.Helper()
	dec, err := sm83.NewDecoder(sm83.DefaultOptions())
	assert.NoError(t, err)
	w := disasm.New(log.NewTestLogger(t), dec, disasm.Policy{})
	_, err = w.Walk(context.Background(), image.New(data), 0, sink)
	assert.NoError(t, err)
}

func TestListing(t *testing.T) {
	var buf bytes.Buffer
	listing := NewListing(&buf, Options{Labels: true})
	walk(t, testProgram, listing)
	assert.NoError(t, listing.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "0   0x0000  CD 04 00  CALL $0004"))
	assert.True(t, strings.HasSuffix(lines[0], " ; _func_0004"))
	assert.Equal(t, "_func_0004:", lines[1])
	assert.Equal(t, "1   0x0004  3C        INC A", lines[2])
	assert.Equal(t, "1   0x0005  C9        RET", lines[3])
	assert.Equal(t, "0   0x0003  C9        RET", lines[4])
}

func TestListingWithoutLabels(t *testing.T) {
	var buf bytes.Buffer
	listing := NewListing(&buf, Options{})
	walk(t, testProgram, listing)
	assert.NoError(t, listing.Flush())

	expected := "0   0x0000  CD 04 00  CALL $0004\n" +
		"1   0x0004  3C        INC A\n" +
		"1   0x0005  C9        RET\n" +
		"0   0x0003  C9        RET\n"
	assert.Equal(t, expected, buf.String())

	// buffer is reset after flushing
	buf.Reset()
	assert.NoError(t, listing.Flush())
	assert.Equal(t, "", buf.String())
}

func TestListingBranchIntoInstruction(t *testing.T) {
	data := []byte{
		0x3E, 0xC9, // 0: LD A, $C9
		0x18, 0xFD, // 2: JR $0001
	}

	var buf bytes.Buffer
	listing := NewListing(&buf, Options{Labels: true})
	walk(t, data, listing)
	assert.NoError(t, listing.Flush())

	output := buf.String()
	assert.Contains(t, output, "_label_0001:")
	assert.Contains(t, output, "LD A, $C9")
	assert.Contains(t, output, "; "+branchIntoComment)
}

func TestListingColor(t *testing.T) {
	var buf bytes.Buffer
	listing := NewListing(&buf, Options{Color: true, Labels: true})
	walk(t, testProgram, listing)
	assert.NoError(t, listing.Flush())

	output := buf.String()
	assert.Contains(t, output, "\x1b[")
	assert.Contains(t, output, "0x0004")
	assert.Contains(t, output, "_func_0004:")
}

func TestJSON(t *testing.T) {
	var sink JSON
	walk(t, testProgram, &sink)

	assert.Len(t, sink.Entries, 4)
	assert.Equal(t, Entry{
		Depth:       0,
		Address:     "0x0000",
		Bytes:       "CD 04 00",
		Instruction: "CALL $0004",
		Kind:        "call",
		Target:      "0x0004",
	}, sink.Entries[0])
	assert.Equal(t, Entry{
		Depth:       1,
		Address:     "0x0004",
		Bytes:       "3C",
		Instruction: "INC A",
		Kind:        "sequential",
	}, sink.Entries[1])
}

func TestUseColor(t *testing.T) {
	color, err := UseColor(ColorAlways, nil)
	assert.NoError(t, err)
	assert.True(t, color)

	color, err = UseColor(ColorNever, nil)
	assert.NoError(t, err)
	assert.False(t, color)

	color, err = UseColor(ColorAuto, nil)
	assert.NoError(t, err)
	assert.False(t, color)

	_, err = UseColor("rainbow", nil)
	assert.ErrorContains(t, err, "unsupported color mode")
}
