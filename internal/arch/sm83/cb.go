package sm83

import "fmt"

// prefixLength is the architectural length of a 0xCB prefixed instruction.
const prefixLength = 2

var cbRegisters = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

var cbRotations = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// CBOpcodes maps the byte following the 0xCB prefix to its mnemonic.
// All prefixed instructions are two bytes long and sequential.
var CBOpcodes = buildCBOpcodes()

// buildCBOpcodes fills the table from the regular encoding of the prefixed
// instructions: bits 0-2 select the register, bits 3-5 the operation or bit
// index and bits 6-7 the operation group.
func buildCBOpcodes() [256]string {
	var table [256]string
	for i := range table {
		reg := cbRegisters[i&7]
		sel := (i >> 3) & 7

		switch i >> 6 {
		case 0:
			table[i] = fmt.Sprintf("%s %s", cbRotations[sel], reg)
		case 1:
			table[i] = fmt.Sprintf("BIT %d, %s", sel, reg)
		case 2:
			table[i] = fmt.Sprintf("RES %d, %s", sel, reg)
		case 3:
			table[i] = fmt.Sprintf("SET %d, %s", sel, reg)
		}
	}
	return table
}
