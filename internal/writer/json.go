package writer

import (
	"fmt"

	"github.com/retroenv/gbinspect/internal/disasm"
)

// Entry is the JSON representation of a disassembled instruction.
type Entry struct {
	Depth       int    `json:"depth"`
	Address     string `json:"address"`
	Bytes       string `json:"bytes"`
	Instruction string `json:"instruction"`
	Kind        string `json:"kind"`
	Target      string `json:"target,omitempty"`
}

// NewEntry converts a record to its JSON representation.
func NewEntry(rec disasm.Record) Entry {
	ins := rec.Instruction
	e := Entry{
		Depth:       rec.Depth,
		Address:     fmt.Sprintf("0x%04X", rec.Address),
		Bytes:       hexBytes(ins.Bytes()),
		Instruction: ins.String(),
		Kind:        ins.Kind.String(),
	}
	if ins.HasTarget {
		e.Target = fmt.Sprintf("0x%04X", ins.Target)
	}
	return e
}

// JSON is a sink that collects the instructions for a JSON document.
type JSON struct {
	Entries []Entry
}

// Write converts and appends the record.
func (j *JSON) Write(rec disasm.Record) error {
	j.Entries = append(j.Entries, NewEntry(rec))
	return nil
}
