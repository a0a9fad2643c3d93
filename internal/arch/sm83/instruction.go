package sm83

import (
	"fmt"
	"strings"
)

// Instruction is one decoded instruction.
type Instruction struct {
	Address  int    // offset of the opcode byte in the image
	Opcode   byte   // opcode byte, 0xCB for prefixed instructions
	Mnemonic string // mnemonic template of the opcode table
	Length   int    // total encoded length in bytes
	Operands []byte // immediate operand bytes, excluding the opcode byte
	Kind     Kind
	Param    Param

	Target    int  // branch or call target, valid if HasTarget is set
	HasTarget bool // false for indirect jumps like JP HL
}

// Name returns the instruction name without operands.
func (i Instruction) Name() string {
	name, _, _ := strings.Cut(i.Mnemonic, " ")
	return name
}

// IsCall returns true if the instruction is a call.
func (i Instruction) IsCall() bool {
	return i.Kind.IsCall()
}

// IsJump returns true if the instruction is a jump.
func (i Instruction) IsJump() bool {
	return i.Kind.IsBranch()
}

// IsReturn returns true if the instruction is a return.
func (i Instruction) IsReturn() bool {
	return i.Kind.IsReturn()
}

// Bytes returns the encoded instruction bytes.
func (i Instruction) Bytes() []byte {
	b := make([]byte, 0, i.Length)
	b = append(b, i.Opcode)
	return append(b, i.Operands...)
}

// String returns the instruction in assembly notation with the operand
// placeholder replaced by its value.
func (i Instruction) String() string {
	if i.Param == Prefix {
		return i.prefixString()
	}

	token := i.Param.placeholder()
	if token == "" {
		return i.Mnemonic
	}
	// SP+e8 carries the sign in the operand value
	if i.Param == SignedOffset8 && strings.Contains(i.Mnemonic, "+"+token) {
		token = "+" + token
	}
	return strings.Replace(i.Mnemonic, token, i.operandString(), 1)
}

func (i Instruction) prefixString() string {
	if i.Length == prefixLength {
		return i.Mnemonic
	}
	parts := make([]string, 0, len(i.Operands))
	for _, b := range i.Operands {
		parts = append(parts, fmt.Sprintf("$%02X", b))
	}
	return i.Mnemonic + " " + strings.Join(parts, " ")
}

func (i Instruction) operandString() string {
	switch i.Param {
	case Immediate8:
		return fmt.Sprintf("$%02X", i.Operands[0])
	case Immediate16, Absolute16:
		return fmt.Sprintf("$%04X", uint16(i.Operands[1])<<8|uint16(i.Operands[0]))
	case Relative8:
		if i.HasTarget {
			return fmt.Sprintf("$%04X", i.Target)
		}
		return fmt.Sprintf("%+d", int8(i.Operands[0]))
	case HighPage8:
		return fmt.Sprintf("$FF%02X", i.Operands[0])
	case SignedOffset8:
		return fmt.Sprintf("%+d", int8(i.Operands[0]))
	default:
		return ""
	}
}

// UnknownOpcodeError is returned when decoding an opcode that does not exist on the CPU.
type UnknownOpcodeError struct {
	Opcode  byte
	Address int
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%02X at offset 0x%04X", e.Opcode, e.Address)
}
