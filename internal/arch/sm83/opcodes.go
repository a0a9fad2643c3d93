package sm83

// Opcodes maps every opcode byte to its definition. Opcodes that do not exist
// on the CPU are of kind Unknown.
var Opcodes = [256]Opcode{
	0x00: {Mnemonic: "NOP", Length: 1},
	0x01: {Mnemonic: "LD BC, n16", Length: 3, Param: Immediate16},
	0x02: {Mnemonic: "LD (BC), A", Length: 1},
	0x03: {Mnemonic: "INC BC", Length: 1},
	0x04: {Mnemonic: "INC B", Length: 1},
	0x05: {Mnemonic: "DEC B", Length: 1},
	0x06: {Mnemonic: "LD B, n8", Length: 2, Param: Immediate8},
	0x07: {Mnemonic: "RLCA", Length: 1},
	0x08: {Mnemonic: "LD (a16), SP", Length: 3, Param: Absolute16},
	0x09: {Mnemonic: "ADD HL, BC", Length: 1},
	0x0A: {Mnemonic: "LD A, (BC)", Length: 1},
	0x0B: {Mnemonic: "DEC BC", Length: 1},
	0x0C: {Mnemonic: "INC C", Length: 1},
	0x0D: {Mnemonic: "DEC C", Length: 1},
	0x0E: {Mnemonic: "LD C, n8", Length: 2, Param: Immediate8},
	0x0F: {Mnemonic: "RRCA", Length: 1},
	0x10: {Mnemonic: "STOP n8", Length: 2, Kind: Halt, Param: Immediate8},
	0x11: {Mnemonic: "LD DE, n16", Length: 3, Param: Immediate16},
	0x12: {Mnemonic: "LD (DE), A", Length: 1},
	0x13: {Mnemonic: "INC DE", Length: 1},
	0x14: {Mnemonic: "INC D", Length: 1},
	0x15: {Mnemonic: "DEC D", Length: 1},
	0x16: {Mnemonic: "LD D, n8", Length: 2, Param: Immediate8},
	0x17: {Mnemonic: "RLA", Length: 1},
	0x18: {Mnemonic: "JR e8", Length: 2, Kind: UnconditionalBranch, Param: Relative8},
	0x19: {Mnemonic: "ADD HL, DE", Length: 1},
	0x1A: {Mnemonic: "LD A, (DE)", Length: 1},
	0x1B: {Mnemonic: "DEC DE", Length: 1},
	0x1C: {Mnemonic: "INC E", Length: 1},
	0x1D: {Mnemonic: "DEC E", Length: 1},
	0x1E: {Mnemonic: "LD E, n8", Length: 2, Param: Immediate8},
	0x1F: {Mnemonic: "RRA", Length: 1},
	0x20: {Mnemonic: "JR NZ, e8", Length: 2, Kind: ConditionalBranch, Param: Relative8},
	0x21: {Mnemonic: "LD HL, n16", Length: 3, Param: Immediate16},
	0x22: {Mnemonic: "LD (HL+), A", Length: 1},
	0x23: {Mnemonic: "INC HL", Length: 1},
	0x24: {Mnemonic: "INC H", Length: 1},
	0x25: {Mnemonic: "DEC H", Length: 1},
	0x26: {Mnemonic: "LD H, n8", Length: 2, Param: Immediate8},
	0x27: {Mnemonic: "DAA", Length: 1},
	0x28: {Mnemonic: "JR Z, e8", Length: 2, Kind: ConditionalBranch, Param: Relative8},
	0x29: {Mnemonic: "ADD HL, HL", Length: 1},
	0x2A: {Mnemonic: "LD A, (HL+)", Length: 1},
	0x2B: {Mnemonic: "DEC HL", Length: 1},
	0x2C: {Mnemonic: "INC L", Length: 1},
	0x2D: {Mnemonic: "DEC L", Length: 1},
	0x2E: {Mnemonic: "LD L, n8", Length: 2, Param: Immediate8},
	0x2F: {Mnemonic: "CPL", Length: 1},
	0x30: {Mnemonic: "JR NC, e8", Length: 2, Kind: ConditionalBranch, Param: Relative8},
	0x31: {Mnemonic: "LD SP, n16", Length: 3, Param: Immediate16},
	0x32: {Mnemonic: "LD (HL-), A", Length: 1},
	0x33: {Mnemonic: "INC SP", Length: 1},
	0x34: {Mnemonic: "INC (HL)", Length: 1},
	0x35: {Mnemonic: "DEC (HL)", Length: 1},
	0x36: {Mnemonic: "LD (HL), n8", Length: 2, Param: Immediate8},
	0x37: {Mnemonic: "SCF", Length: 1},
	0x38: {Mnemonic: "JR C, e8", Length: 2, Kind: ConditionalBranch, Param: Relative8},
	0x39: {Mnemonic: "ADD HL, SP", Length: 1},
	0x3A: {Mnemonic: "LD A, (HL-)", Length: 1},
	0x3B: {Mnemonic: "DEC SP", Length: 1},
	0x3C: {Mnemonic: "INC A", Length: 1},
	0x3D: {Mnemonic: "DEC A", Length: 1},
	0x3E: {Mnemonic: "LD A, n8", Length: 2, Param: Immediate8},
	0x3F: {Mnemonic: "CCF", Length: 1},
	0x40: {Mnemonic: "LD B, B", Length: 1},
	0x41: {Mnemonic: "LD B, C", Length: 1},
	0x42: {Mnemonic: "LD B, D", Length: 1},
	0x43: {Mnemonic: "LD B, E", Length: 1},
	0x44: {Mnemonic: "LD B, H", Length: 1},
	0x45: {Mnemonic: "LD B, L", Length: 1},
	0x46: {Mnemonic: "LD B, (HL)", Length: 1},
	0x47: {Mnemonic: "LD B, A", Length: 1},
	0x48: {Mnemonic: "LD C, B", Length: 1},
	0x49: {Mnemonic: "LD C, C", Length: 1},
	0x4A: {Mnemonic: "LD C, D", Length: 1},
	0x4B: {Mnemonic: "LD C, E", Length: 1},
	0x4C: {Mnemonic: "LD C, H", Length: 1},
	0x4D: {Mnemonic: "LD C, L", Length: 1},
	0x4E: {Mnemonic: "LD C, (HL)", Length: 1},
	0x4F: {Mnemonic: "LD C, A", Length: 1},
	0x50: {Mnemonic: "LD D, B", Length: 1},
	0x51: {Mnemonic: "LD D, C", Length: 1},
	0x52: {Mnemonic: "LD D, D", Length: 1},
	0x53: {Mnemonic: "LD D, E", Length: 1},
	0x54: {Mnemonic: "LD D, H", Length: 1},
	0x55: {Mnemonic: "LD D, L", Length: 1},
	0x56: {Mnemonic: "LD D, (HL)", Length: 1},
	0x57: {Mnemonic: "LD D, A", Length: 1},
	0x58: {Mnemonic: "LD E, B", Length: 1},
	0x59: {Mnemonic: "LD E, C", Length: 1},
	0x5A: {Mnemonic: "LD E, D", Length: 1},
	0x5B: {Mnemonic: "LD E, E", Length: 1},
	0x5C: {Mnemonic: "LD E, H", Length: 1},
	0x5D: {Mnemonic: "LD E, L", Length: 1},
	0x5E: {Mnemonic: "LD E, (HL)", Length: 1},
	0x5F: {Mnemonic: "LD E, A", Length: 1},
	0x60: {Mnemonic: "LD H, B", Length: 1},
	0x61: {Mnemonic: "LD H, C", Length: 1},
	0x62: {Mnemonic: "LD H, D", Length: 1},
	0x63: {Mnemonic: "LD H, E", Length: 1},
	0x64: {Mnemonic: "LD H, H", Length: 1},
	0x65: {Mnemonic: "LD H, L", Length: 1},
	0x66: {Mnemonic: "LD H, (HL)", Length: 1},
	0x67: {Mnemonic: "LD H, A", Length: 1},
	0x68: {Mnemonic: "LD L, B", Length: 1},
	0x69: {Mnemonic: "LD L, C", Length: 1},
	0x6A: {Mnemonic: "LD L, D", Length: 1},
	0x6B: {Mnemonic: "LD L, E", Length: 1},
	0x6C: {Mnemonic: "LD L, H", Length: 1},
	0x6D: {Mnemonic: "LD L, L", Length: 1},
	0x6E: {Mnemonic: "LD L, (HL)", Length: 1},
	0x6F: {Mnemonic: "LD L, A", Length: 1},
	0x70: {Mnemonic: "LD (HL), B", Length: 1},
	0x71: {Mnemonic: "LD (HL), C", Length: 1},
	0x72: {Mnemonic: "LD (HL), D", Length: 1},
	0x73: {Mnemonic: "LD (HL), E", Length: 1},
	0x74: {Mnemonic: "LD (HL), H", Length: 1},
	0x75: {Mnemonic: "LD (HL), L", Length: 1},
	0x76: {Mnemonic: "HALT", Length: 1},
	0x77: {Mnemonic: "LD (HL), A", Length: 1},
	0x78: {Mnemonic: "LD A, B", Length: 1},
	0x79: {Mnemonic: "LD A, C", Length: 1},
	0x7A: {Mnemonic: "LD A, D", Length: 1},
	0x7B: {Mnemonic: "LD A, E", Length: 1},
	0x7C: {Mnemonic: "LD A, H", Length: 1},
	0x7D: {Mnemonic: "LD A, L", Length: 1},
	0x7E: {Mnemonic: "LD A, (HL)", Length: 1},
	0x7F: {Mnemonic: "LD A, A", Length: 1},
	0x80: {Mnemonic: "ADD A, B", Length: 1},
	0x81: {Mnemonic: "ADD A, C", Length: 1},
	0x82: {Mnemonic: "ADD A, D", Length: 1},
	0x83: {Mnemonic: "ADD A, E", Length: 1},
	0x84: {Mnemonic: "ADD A, H", Length: 1},
	0x85: {Mnemonic: "ADD A, L", Length: 1},
	0x86: {Mnemonic: "ADD A, (HL)", Length: 1},
	0x87: {Mnemonic: "ADD A, A", Length: 1},
	0x88: {Mnemonic: "ADC A, B", Length: 1},
	0x89: {Mnemonic: "ADC A, C", Length: 1},
	0x8A: {Mnemonic: "ADC A, D", Length: 1},
	0x8B: {Mnemonic: "ADC A, E", Length: 1},
	0x8C: {Mnemonic: "ADC A, H", Length: 1},
	0x8D: {Mnemonic: "ADC A, L", Length: 1},
	0x8E: {Mnemonic: "ADC A, (HL)", Length: 1},
	0x8F: {Mnemonic: "ADC A, A", Length: 1},
	0x90: {Mnemonic: "SUB A, B", Length: 1},
	0x91: {Mnemonic: "SUB A, C", Length: 1},
	0x92: {Mnemonic: "SUB A, D", Length: 1},
	0x93: {Mnemonic: "SUB A, E", Length: 1},
	0x94: {Mnemonic: "SUB A, H", Length: 1},
	0x95: {Mnemonic: "SUB A, L", Length: 1},
	0x96: {Mnemonic: "SUB A, (HL)", Length: 1},
	0x97: {Mnemonic: "SUB A, A", Length: 1},
	0x98: {Mnemonic: "SBC A, B", Length: 1},
	0x99: {Mnemonic: "SBC A, C", Length: 1},
	0x9A: {Mnemonic: "SBC A, D", Length: 1},
	0x9B: {Mnemonic: "SBC A, E", Length: 1},
	0x9C: {Mnemonic: "SBC A, H", Length: 1},
	0x9D: {Mnemonic: "SBC A, L", Length: 1},
	0x9E: {Mnemonic: "SBC A, (HL)", Length: 1},
	0x9F: {Mnemonic: "SBC A, A", Length: 1},
	0xA0: {Mnemonic: "AND A, B", Length: 1},
	0xA1: {Mnemonic: "AND A, C", Length: 1},
	0xA2: {Mnemonic: "AND A, D", Length: 1},
	0xA3: {Mnemonic: "AND A, E", Length: 1},
	0xA4: {Mnemonic: "AND A, H", Length: 1},
	0xA5: {Mnemonic: "AND A, L", Length: 1},
	0xA6: {Mnemonic: "AND A, (HL)", Length: 1},
	0xA7: {Mnemonic: "AND A, A", Length: 1},
	0xA8: {Mnemonic: "XOR A, B", Length: 1},
	0xA9: {Mnemonic: "XOR A, C", Length: 1},
	0xAA: {Mnemonic: "XOR A, D", Length: 1},
	0xAB: {Mnemonic: "XOR A, E", Length: 1},
	0xAC: {Mnemonic: "XOR A, H", Length: 1},
	0xAD: {Mnemonic: "XOR A, L", Length: 1},
	0xAE: {Mnemonic: "XOR A, (HL)", Length: 1},
	0xAF: {Mnemonic: "XOR A, A", Length: 1},
	0xB0: {Mnemonic: "OR A, B", Length: 1},
	0xB1: {Mnemonic: "OR A, C", Length: 1},
	0xB2: {Mnemonic: "OR A, D", Length: 1},
	0xB3: {Mnemonic: "OR A, E", Length: 1},
	0xB4: {Mnemonic: "OR A, H", Length: 1},
	0xB5: {Mnemonic: "OR A, L", Length: 1},
	0xB6: {Mnemonic: "OR A, (HL)", Length: 1},
	0xB7: {Mnemonic: "OR A, A", Length: 1},
	0xB8: {Mnemonic: "CP A, B", Length: 1},
	0xB9: {Mnemonic: "CP A, C", Length: 1},
	0xBA: {Mnemonic: "CP A, D", Length: 1},
	0xBB: {Mnemonic: "CP A, E", Length: 1},
	0xBC: {Mnemonic: "CP A, H", Length: 1},
	0xBD: {Mnemonic: "CP A, L", Length: 1},
	0xBE: {Mnemonic: "CP A, (HL)", Length: 1},
	0xBF: {Mnemonic: "CP A, A", Length: 1},
	0xC0: {Mnemonic: "RET NZ", Length: 1, Kind: ConditionalReturn},
	0xC1: {Mnemonic: "POP BC", Length: 1},
	0xC2: {Mnemonic: "JP NZ, a16", Length: 3, Kind: ConditionalBranch, Param: Absolute16},
	0xC3: {Mnemonic: "JP a16", Length: 3, Kind: UnconditionalBranch, Param: Absolute16},
	0xC4: {Mnemonic: "CALL NZ, a16", Length: 3, Kind: ConditionalCall, Param: Absolute16},
	0xC5: {Mnemonic: "PUSH BC", Length: 1},
	0xC6: {Mnemonic: "ADD A, n8", Length: 2, Param: Immediate8},
	0xC7: {Mnemonic: "RST $00", Length: 1, Kind: Call, Vector: 0x00},
	0xC8: {Mnemonic: "RET Z", Length: 1, Kind: ConditionalReturn},
	0xC9: {Mnemonic: "RET", Length: 1, Kind: Return},
	0xCA: {Mnemonic: "JP Z, a16", Length: 3, Kind: ConditionalBranch, Param: Absolute16},
	0xCB: {Mnemonic: "PREFIX", Length: 3, Param: Prefix},
	0xCC: {Mnemonic: "CALL Z, a16", Length: 3, Kind: ConditionalCall, Param: Absolute16},
	0xCD: {Mnemonic: "CALL a16", Length: 3, Kind: Call, Param: Absolute16},
	0xCE: {Mnemonic: "ADC A, n8", Length: 2, Param: Immediate8},
	0xCF: {Mnemonic: "RST $08", Length: 1, Kind: Call, Vector: 0x08},
	0xD0: {Mnemonic: "RET NC", Length: 1, Kind: ConditionalReturn},
	0xD1: {Mnemonic: "POP DE", Length: 1},
	0xD2: {Mnemonic: "JP NC, a16", Length: 3, Kind: ConditionalBranch, Param: Absolute16},
	0xD3: {Kind: Unknown},
	0xD4: {Mnemonic: "CALL NC, a16", Length: 3, Kind: ConditionalCall, Param: Absolute16},
	0xD5: {Mnemonic: "PUSH DE", Length: 1},
	0xD6: {Mnemonic: "SUB A, n8", Length: 2, Param: Immediate8},
	0xD7: {Mnemonic: "RST $10", Length: 1, Kind: Call, Vector: 0x10},
	0xD8: {Mnemonic: "RET C", Length: 1, Kind: ConditionalReturn},
	0xD9: {Mnemonic: "RETI", Length: 1, Kind: Return},
	0xDA: {Mnemonic: "JP C, a16", Length: 3, Kind: ConditionalBranch, Param: Absolute16},
	0xDB: {Kind: Unknown},
	0xDC: {Mnemonic: "CALL C, a16", Length: 3, Kind: ConditionalCall, Param: Absolute16},
	0xDD: {Kind: Unknown},
	0xDE: {Mnemonic: "SBC A, n8", Length: 2, Param: Immediate8},
	0xDF: {Mnemonic: "RST $18", Length: 1, Kind: Call, Vector: 0x18},
	0xE0: {Mnemonic: "LDH (a8), A", Length: 2, Param: HighPage8},
	0xE1: {Mnemonic: "POP HL", Length: 1},
	0xE2: {Mnemonic: "LDH (C), A", Length: 1},
	0xE3: {Kind: Unknown},
	0xE4: {Kind: Unknown},
	0xE5: {Mnemonic: "PUSH HL", Length: 1},
	0xE6: {Mnemonic: "AND A, n8", Length: 2, Param: Immediate8},
	0xE7: {Mnemonic: "RST $20", Length: 1, Kind: Call, Vector: 0x20},
	0xE8: {Mnemonic: "ADD SP, e8", Length: 2, Param: SignedOffset8},
	0xE9: {Mnemonic: "JP HL", Length: 1, Kind: UnconditionalBranch},
	0xEA: {Mnemonic: "LD (a16), A", Length: 3, Param: Absolute16},
	0xEB: {Kind: Unknown},
	0xEC: {Kind: Unknown},
	0xED: {Kind: Unknown},
	0xEE: {Mnemonic: "XOR A, n8", Length: 2, Param: Immediate8},
	0xEF: {Mnemonic: "RST $28", Length: 1, Kind: Call, Vector: 0x28},
	0xF0: {Mnemonic: "LDH A, (a8)", Length: 2, Param: HighPage8},
	0xF1: {Mnemonic: "POP AF", Length: 1},
	0xF2: {Mnemonic: "LDH A, (C)", Length: 1},
	0xF3: {Mnemonic: "DI", Length: 1},
	0xF4: {Kind: Unknown},
	0xF5: {Mnemonic: "PUSH AF", Length: 1},
	0xF6: {Mnemonic: "OR A, n8", Length: 2, Param: Immediate8},
	0xF7: {Mnemonic: "RST $30", Length: 1, Kind: Call, Vector: 0x30},
	0xF8: {Mnemonic: "LD HL, SP+e8", Length: 2, Param: SignedOffset8},
	0xF9: {Mnemonic: "LD SP, HL", Length: 1},
	0xFA: {Mnemonic: "LD A, (a16)", Length: 3, Param: Absolute16},
	0xFB: {Mnemonic: "EI", Length: 1},
	0xFC: {Kind: Unknown},
	0xFD: {Kind: Unknown},
	0xFE: {Mnemonic: "CP A, n8", Length: 2, Param: Immediate8},
	0xFF: {Mnemonic: "RST $38", Length: 1, Kind: Call, Vector: 0x38},
}
