package sm83

import "fmt"

// Kind classifies the effect of an instruction on the address executed next.
type Kind uint8

// Control flow kinds. The zero value is a sequential instruction.
const (
	Sequential Kind = iota
	ConditionalBranch
	UnconditionalBranch
	Call
	ConditionalCall
	Return
	ConditionalReturn
	Halt
	Unknown
)

var kindNames = [...]string{
	Sequential:          "sequential",
	ConditionalBranch:   "conditional-branch",
	UnconditionalBranch: "unconditional-branch",
	Call:                "call",
	ConditionalCall:     "conditional-call",
	Return:              "return",
	ConditionalReturn:   "conditional-return",
	Halt:                "halt",
	Unknown:             "unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsBranch returns true for conditional and unconditional jumps.
func (k Kind) IsBranch() bool {
	return k == ConditionalBranch || k == UnconditionalBranch
}

// IsCall returns true for conditional and unconditional calls.
func (k Kind) IsCall() bool {
	return k == Call || k == ConditionalCall
}

// IsReturn returns true for conditional and unconditional returns.
func (k Kind) IsReturn() bool {
	return k == Return || k == ConditionalReturn
}

// Param describes the immediate operand of an opcode.
type Param uint8

// Operand encodings.
const (
	NoParam       Param = iota
	Immediate8          // n8
	Immediate16         // n16, little-endian
	Absolute16          // a16, little-endian address
	Relative8           // e8, signed offset from the next instruction
	HighPage8           // a8, address $FF00 + n
	SignedOffset8       // e8, signed offset added to SP
	Prefix              // escape byte for the 0xCB table
)

// placeholder returns the mnemonic token that the operand value replaces.
func (p Param) placeholder() string {
	switch p {
	case Immediate8:
		return "n8"
	case Immediate16:
		return "n16"
	case Absolute16:
		return "a16"
	case Relative8, SignedOffset8:
		return "e8"
	case HighPage8:
		return "a8"
	default:
		return ""
	}
}

// Opcode is the static definition of one opcode byte.
type Opcode struct {
	Mnemonic string // mnemonic with an operand placeholder, e.g. "JP NZ, a16"
	Length   int    // total encoded length including the opcode byte
	Kind     Kind
	Param    Param
	Vector   uint16 // fixed call target of RST instructions
}

// Valid returns whether the opcode exists on the CPU.
func (o Opcode) Valid() bool {
	return o.Kind != Unknown
}

// HasFixedTarget returns whether the opcode transfers control to a target
// that is not encoded in an operand.
func (o Opcode) HasFixedTarget() bool {
	return o.Kind == Call && o.Param == NoParam
}
