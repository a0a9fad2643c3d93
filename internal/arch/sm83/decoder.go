package sm83

import (
	"fmt"

	"github.com/retroenv/gbinspect/internal/image"
)

// PrefixMode controls how the 0xCB escape prefix is decoded.
type PrefixMode string

const (
	// PrefixOpaque decodes the prefix as a single 3 byte PREFIX instruction
	// without looking at the secondary table.
	PrefixOpaque PrefixMode = "opaque"
	// PrefixDecoded decodes the secondary table, prefixed instructions are
	// 2 bytes long.
	PrefixDecoded PrefixMode = "decoded"
)

// TargetMode controls how targets of relative jumps are computed.
type TargetMode string

const (
	// TargetRelative adds the signed operand to the address of the
	// following instruction, as the CPU does.
	TargetRelative TargetMode = "relative"
	// TargetLiteral uses the unsigned operand byte as absolute address.
	TargetLiteral TargetMode = "literal"
)

// Options of the decoder.
type Options struct {
	Prefix  PrefixMode
	Targets TargetMode
}

// DefaultOptions returns the default decoder options.
func DefaultOptions() Options {
	return Options{
		Prefix:  PrefixOpaque,
		Targets: TargetRelative,
	}
}

// Validate returns an error for unsupported option values.
func (o Options) Validate() error {
	switch o.Prefix {
	case PrefixOpaque, PrefixDecoded:
	default:
		return fmt.Errorf("unsupported prefix mode '%s'", o.Prefix)
	}
	switch o.Targets {
	case TargetRelative, TargetLiteral:
	default:
		return fmt.Errorf("unsupported target mode '%s'", o.Targets)
	}
	return nil
}

// Decoder decodes SM83 instructions from a cartridge image.
type Decoder struct {
	options Options
}

// NewDecoder returns a new decoder.
func NewDecoder(options Options) (*Decoder, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{options: options}, nil
}

// Decode decodes the instruction at the given image offset. Reads past the
// end of the image return an error wrapping image.ErrOutOfBounds, opcodes
// that do not exist return an *UnknownOpcodeError.
func (d *Decoder) Decode(v image.View, address int) (Instruction, error) {
	b, err := v.Byte(address)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading opcode: %w", err)
	}

	opcode := Opcodes[b]
	if !opcode.Valid() {
		return Instruction{}, &UnknownOpcodeError{Opcode: b, Address: address}
	}

	ins := Instruction{
		Address:  address,
		Opcode:   b,
		Mnemonic: opcode.Mnemonic,
		Length:   opcode.Length,
		Kind:     opcode.Kind,
		Param:    opcode.Param,
	}

	if opcode.Param == Prefix && d.options.Prefix == PrefixDecoded {
		ins.Length = prefixLength
	}

	if ins.Length > 1 {
		ins.Operands, err = v.Slice(address+1, ins.Length-1)
		if err != nil {
			return Instruction{}, fmt.Errorf("reading operands of $%02X: %w", b, err)
		}
	}

	if opcode.Param == Prefix && d.options.Prefix == PrefixDecoded {
		ins.Mnemonic = CBOpcodes[ins.Operands[0]]
	}

	d.setTarget(&ins, opcode)
	return ins, nil
}

// setTarget sets the static control flow target of the instruction if it has one.
func (d *Decoder) setTarget(ins *Instruction, opcode Opcode) {
	switch {
	case opcode.HasFixedTarget():
		ins.Target = int(opcode.Vector)
		ins.HasTarget = true

	case opcode.Param == Absolute16 && (opcode.Kind.IsBranch() || opcode.Kind.IsCall()):
		ins.Target = int(uint16(ins.Operands[1])<<8 | uint16(ins.Operands[0]))
		ins.HasTarget = true

	case opcode.Param == Relative8:
		if d.options.Targets == TargetLiteral {
			ins.Target = int(ins.Operands[0])
			ins.HasTarget = true
			return
		}
		target := ins.Address + ins.Length + int(int8(ins.Operands[0]))
		if target >= 0 {
			ins.Target = target
			ins.HasTarget = true
		}
	}
}
