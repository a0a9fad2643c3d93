package disasm

import (
	"fmt"
	"slices"

	"github.com/retroenv/gbinspect/internal/arch/sm83"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// Labels names the branch and call destinations of a walk.
type Labels struct {
	names            map[int]string
	intoInstructions set.Set[int] // addresses of instructions that a branch jumps into
}

// NewLabels processes all branch destinations of the records and generates
// a label name for every destination. Call destinations are named as
// functions and take precedence over plain branch labels.
func NewLabels(records []Record) *Labels {
	l := &Labels{
		names:            make(map[int]string),
		intoInstructions: set.New[int](),
	}

	calls := set.New[int]()
	destinations := set.New[int]()
	for _, rec := range records {
		ins := rec.Instruction
		if !ins.HasTarget {
			continue
		}
		destinations.Add(ins.Target)
		if ins.IsCall() {
			calls.Add(ins.Target)
		}
	}

	starts := make(map[int]sm83.Instruction, len(records))
	for _, rec := range records {
		starts[rec.Address] = rec.Instruction
	}

	sorted := make([]int, 0, len(destinations))
	for dest := range destinations {
		sorted = append(sorted, dest)
	}
	slices.Sort(sorted)

	for _, address := range sorted {
		if calls.Contains(address) {
			l.names[address] = fmt.Sprintf(funcNaming, address)
		} else {
			l.names[address] = fmt.Sprintf(labelNaming, address)
		}
		l.handleJumpIntoInstruction(address, starts)
	}
	return l
}

// handleJumpIntoInstruction marks the instruction whose operand bytes contain
// the destination address.
func (l *Labels) handleJumpIntoInstruction(address int, starts map[int]sm83.Instruction) {
	// look backwards for instruction starts, instructions are at most 3 bytes
	for start := address - 1; start >= 0 && start > address-3; start-- {
		ins, ok := starts[start]
		if ok && start+ins.Length > address {
			l.intoInstructions.Add(start)
		}
	}
}

// Name returns the label of the address, if it is a branch destination.
func (l *Labels) Name(address int) (string, bool) {
	name, ok := l.names[address]
	return name, ok
}

// BranchedInto returns whether a branch destination points inside the operand
// bytes of the instruction at the given address.
func (l *Labels) BranchedInto(address int) bool {
	return l.intoInstructions.Contains(address)
}

// Len returns the number of labels.
func (l *Labels) Len() int {
	return len(l.names)
}
