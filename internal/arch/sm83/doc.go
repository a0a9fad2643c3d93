// Package sm83 decodes instructions of the Sharp SM83 CPU used in the Game Boy.
//
// # Instruction Set
//
// The SM83 is an 8080/Z80 derivative:
//   - Opcodes are 1 byte, followed by 0-2 immediate operand bytes
//   - 16 bit operands are little-endian
//   - Relative jumps (JR) use a signed 8 bit offset from the next instruction
//   - 11 opcode values are not used by the CPU and lock it up when executed
//   - The byte 0xCB escapes into a secondary table of 256 bit operations
//
// # Decoding
//
// Opcodes is a static table indexed by the opcode byte. Each entry is a plain
// record of mnemonic, length, control flow kind and operand encoding, so a
// byte value can never be defined twice.
//
// By default the 0xCB prefix is decoded as an opaque 3 byte PREFIX
// instruction. PrefixDecoded switches to the secondary table with the
// architectural length of 2 bytes.
//
// Targets of relative jumps are computed the way the CPU does. TargetLiteral
// instead interprets the operand byte as an absolute address, which matches
// the listings of older versions of the tool.
//
// # Usage Example
//
//	dec, err := sm83.NewDecoder(sm83.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	ins, err := dec.Decode(image.New(data), 0x0100)
package sm83
