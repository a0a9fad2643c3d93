package sm83

import (
	"errors"
	"testing"

	"github.com/retroenv/gbinspect/internal/image"
	"github.com/retroenv/retrogolib/assert"
)

var illegalOpcodes = []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func newTestDecoder(t *testing.T, options Options) *Decoder {
	t.Helper()
	dec, err := NewDecoder(options)
	assert.NoError(t, err)
	return dec
}

func TestOpcodesTableIsExhaustive(t *testing.T) {
	illegal := map[byte]bool{}
	for _, b := range illegalOpcodes {
		illegal[b] = true
	}

	for i, op := range Opcodes {
		if illegal[byte(i)] {
			assert.False(t, op.Valid())
			assert.Equal(t, "", op.Mnemonic)
			continue
		}

		assert.True(t, op.Valid())
		assert.NotEmpty(t, op.Mnemonic)
		assert.True(t, op.Length >= 1 && op.Length <= 3)

		switch op.Param {
		case NoParam:
			assert.Equal(t, 1, op.Length)
		case Immediate8, Relative8, HighPage8, SignedOffset8:
			assert.Equal(t, 2, op.Length)
			assert.Contains(t, op.Mnemonic, op.Param.placeholder())
		case Immediate16, Absolute16:
			assert.Equal(t, 3, op.Length)
			assert.Contains(t, op.Mnemonic, op.Param.placeholder())
		case Prefix:
			assert.Equal(t, 0xCB, i)
		}
	}
}

func TestOpcodesPreviouslyShadowedEntries(t *testing.T) {
	tests := []struct {
		opcode   byte
		mnemonic string
	}{
		{0x43, "LD B, E"},
		{0x44, "LD B, H"},
		{0x63, "LD H, E"},
		{0x64, "LD H, H"},
		{0x73, "LD (HL), E"},
		{0x74, "LD (HL), H"},
		{0x83, "ADD A, E"},
		{0x84, "ADD A, H"},
		{0x93, "SUB A, E"},
		{0x94, "SUB A, H"},
		{0xA3, "AND A, E"},
		{0xA4, "AND A, H"},
		{0xB3, "OR A, E"},
		{0xB4, "OR A, H"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.mnemonic, Opcodes[tt.opcode].Mnemonic)
	}
}

func TestOpcodesControlFlowKinds(t *testing.T) {
	tests := []struct {
		opcode byte
		kind   Kind
	}{
		{0x00, Sequential},
		{0x10, Halt},
		{0x76, Sequential},
		{0x18, UnconditionalBranch},
		{0x20, ConditionalBranch},
		{0x38, ConditionalBranch},
		{0xC0, ConditionalReturn},
		{0xC2, ConditionalBranch},
		{0xC3, UnconditionalBranch},
		{0xC4, ConditionalCall},
		{0xC7, Call},
		{0xC9, Return},
		{0xCB, Sequential},
		{0xCD, Call},
		{0xD9, Return},
		{0xE9, UnconditionalBranch},
		{0xFF, Call},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, Opcodes[tt.opcode].Kind)
	}
}

func TestCBOpcodes(t *testing.T) {
	assert.Equal(t, "RLC B", CBOpcodes[0x00])
	assert.Equal(t, "SWAP A", CBOpcodes[0x37])
	assert.Equal(t, "SRL (HL)", CBOpcodes[0x3E])
	assert.Equal(t, "BIT 7, H", CBOpcodes[0x7C])
	assert.Equal(t, "RES 0, A", CBOpcodes[0x87])
	assert.Equal(t, "SET 7, A", CBOpcodes[0xFF])

	for _, name := range CBOpcodes {
		assert.NotEmpty(t, name)
	}
}

//nolint:funlen // table driven test
func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		address   int
		options   Options
		want      string
		length    int
		kind      Kind
		target    int
		hasTarget bool
	}{
		{
			name:   "nop",
			data:   []byte{0x00},
			want:   "NOP",
			length: 1,
		},
		{
			name:      "absolute jump",
			data:      []byte{0xC3, 0x50, 0x01},
			want:      "JP $0150",
			length:    3,
			kind:      UnconditionalBranch,
			target:    0x0150,
			hasTarget: true,
		},
		{
			name:      "conditional call",
			data:      []byte{0xDC, 0x34, 0x12},
			want:      "CALL C, $1234",
			length:    3,
			kind:      ConditionalCall,
			target:    0x1234,
			hasTarget: true,
		},
		{
			name:   "16 bit immediate",
			data:   []byte{0x31, 0xFE, 0xFF},
			want:   "LD SP, $FFFE",
			length: 3,
		},
		{
			name:   "absolute address load is not a target",
			data:   []byte{0xEA, 0x00, 0xC0},
			want:   "LD ($C000), A",
			length: 3,
		},
		{
			name:   "8 bit immediate",
			data:   []byte{0x3E, 0x2A},
			want:   "LD A, $2A",
			length: 2,
		},
		{
			name:   "high page",
			data:   []byte{0xE0, 0x40},
			want:   "LDH ($FF40), A",
			length: 2,
		},
		{
			name:   "signed stack offset",
			data:   []byte{0xF8, 0xFE},
			want:   "LD HL, SP-2",
			length: 2,
		},
		{
			name:   "add signed to stack",
			data:   []byte{0xE8, 0x04},
			want:   "ADD SP, +4",
			length: 2,
		},
		{
			name:      "relative jump backwards",
			data:      []byte{0x00, 0x00, 0x00, 0x18, 0xFB},
			address:   3,
			want:      "JR $0000",
			length:    2,
			kind:      UnconditionalBranch,
			target:    0,
			hasTarget: true,
		},
		{
			name:      "relative jump forwards",
			data:      []byte{0x20, 0x05},
			want:      "JR NZ, $0007",
			length:    2,
			kind:      ConditionalBranch,
			target:    7,
			hasTarget: true,
		},
		{
			name:    "relative jump before image start",
			data:    []byte{0x18, 0x80},
			want:    "JR -128",
			length:  2,
			kind:    UnconditionalBranch,
			options: DefaultOptions(),
		},
		{
			name:      "literal relative jump",
			data:      []byte{0x00, 0x28, 0xF0},
			address:   1,
			options:   Options{Prefix: PrefixOpaque, Targets: TargetLiteral},
			want:      "JR Z, $00F0",
			length:    2,
			kind:      ConditionalBranch,
			target:    0xF0,
			hasTarget: true,
		},
		{
			name:      "restart vector",
			data:      []byte{0xEF},
			want:      "RST $28",
			length:    1,
			kind:      Call,
			target:    0x28,
			hasTarget: true,
		},
		{
			name:   "indirect jump",
			data:   []byte{0xE9},
			want:   "JP HL",
			length: 1,
			kind:   UnconditionalBranch,
		},
		{
			name:   "conditional return",
			data:   []byte{0xC8},
			want:   "RET Z",
			length: 1,
			kind:   ConditionalReturn,
		},
		{
			name:   "opaque prefix",
			data:   []byte{0xCB, 0x7C, 0x20},
			want:   "PREFIX $7C $20",
			length: 3,
		},
		{
			name:    "decoded prefix",
			data:    []byte{0xCB, 0x7C, 0x20},
			options: Options{Prefix: PrefixDecoded, Targets: TargetRelative},
			want:    "BIT 7, H",
			length:  2,
		},
		{
			name:   "stop",
			data:   []byte{0x10, 0x00},
			want:   "STOP $00",
			length: 2,
			kind:   Halt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := tt.options
			if options == (Options{}) {
				options = DefaultOptions()
			}
			dec := newTestDecoder(t, options)

			ins, err := dec.Decode(image.New(tt.data), tt.address)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ins.String())
			assert.Equal(t, tt.length, ins.Length)
			assert.Equal(t, tt.length-1, len(ins.Operands))
			assert.Equal(t, tt.kind, ins.Kind)
			assert.Equal(t, tt.hasTarget, ins.HasTarget)
			if tt.hasTarget {
				assert.Equal(t, tt.target, ins.Target)
			}
			assert.Equal(t, tt.address, ins.Address)
		})
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	dec := newTestDecoder(t, DefaultOptions())

	for _, b := range illegalOpcodes {
		_, err := dec.Decode(image.New([]byte{0x00, b}), 1)

		var unknown *UnknownOpcodeError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, b, unknown.Opcode)
		assert.Equal(t, 1, unknown.Address)
	}
}

func TestDecodeOutOfBounds(t *testing.T) {
	dec := newTestDecoder(t, DefaultOptions())

	tests := []struct {
		name    string
		data    []byte
		address int
	}{
		{name: "address past end", data: []byte{0x00}, address: 1},
		{name: "missing 16 bit operand", data: []byte{0xC3, 0x50}},
		{name: "missing 8 bit operand", data: []byte{0x00, 0x3E}, address: 1},
		{name: "truncated opaque prefix", data: []byte{0xCB, 0x11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dec.Decode(image.New(tt.data), tt.address)
			assert.True(t, errors.Is(err, image.ErrOutOfBounds))
		})
	}
}

func TestDecodeNextAddress(t *testing.T) {
	dec := newTestDecoder(t, DefaultOptions())
	v := image.New([]byte{0xC3, 0x00, 0x00, 0x00, 0x3C})

	jp, err := dec.Decode(v, 0)
	assert.NoError(t, err)

	next, err := dec.Decode(v, jp.Address+jp.Length)
	assert.NoError(t, err)
	assert.Equal(t, 3, next.Address)
	assert.Equal(t, "NOP", next.String())

	inc, err := dec.Decode(v, next.Address+next.Length)
	assert.NoError(t, err)
	assert.Equal(t, 4, inc.Address)
	assert.Equal(t, "INC A", inc.String())
}

func TestNewDecoderInvalidOptions(t *testing.T) {
	_, err := NewDecoder(Options{Prefix: "full", Targets: TargetRelative})
	assert.Error(t, err)

	_, err = NewDecoder(Options{Prefix: PrefixOpaque, Targets: "absolute"})
	assert.Error(t, err)
}

func TestInstructionHelpers(t *testing.T) {
	dec := newTestDecoder(t, DefaultOptions())
	ins, err := dec.Decode(image.New([]byte{0xCD, 0x00, 0x40}), 0)
	assert.NoError(t, err)

	assert.Equal(t, "CALL", ins.Name())
	assert.True(t, ins.IsCall())
	assert.False(t, ins.IsJump())
	assert.False(t, ins.IsReturn())
	assert.Equal(t, []byte{0xCD, 0x00, 0x40}, ins.Bytes())
	assert.Equal(t, "conditional-call", ConditionalCall.String())
}
