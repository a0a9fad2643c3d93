package cartridge

// Unknown is the label for cartridge type codes that are not in the table.
const Unknown = "UNKNOWN"

// Sentinels returned for size codes that are not in the tables.
const (
	UnknownROMBanks = -1
	UnknownRAMSize  = -1 * kilobyte
)

const kilobyte = 1024

// mbc2RAMSize is the fixed built-in RAM of MBC2 cartridges, 512 half-bytes
// that are stored as 512 x 4 bits but addressed as bytes.
const mbc2RAMSize = 512 * 4

var cartridgeTypes = map[byte]string{
	0x00: "ROM ONLY",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0B: "MMM01",
	0x0C: "MMM01+RAM",
	0x0D: "MMM01+RAM+BATTERY",
	0x0F: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1A: "MBC5+RAM",
	0x1B: "MBC5+RAM+BATTERY",
	0x1C: "MBC5+RUMBLE",
	0x1D: "MBC5+RUMBLE+RAM",
	0x1E: "MBC5+RUMBLE+RAM+BATTERY",
	0x20: "MBC6",
	0x22: "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	0xFC: "POCKET CAMERA",
	0xFD: "BANDAI TAMA5",
	0xFE: "HuC3",
	0xFF: "HuC1+RAM+BATTERY",
}

// romBanks maps the ROM size code to the bank count. Code 0x00 is a 32 KiB
// cartridge without banking.
var romBanks = map[byte]int{
	0x00: 0,
	0x01: 4,
	0x02: 8,
	0x03: 16,
	0x04: 32,
	0x05: 64,
	0x06: 128,
	0x52: 72,
	0x53: 80,
	0x54: 96,
}

// mbc1ROMBanks overrides romBanks for MBC1 cartridges, which can not map
// the banks 0x20, 0x40 and 0x60.
var mbc1ROMBanks = map[byte]int{
	0x05: 63,
	0x06: 125,
}

// ramSizes maps the RAM size code to KiB.
var ramSizes = map[byte]int{
	0x00: 0,
	0x01: 2,
	0x02: 8,
	0x03: 32,
	0x04: 128,
	0x05: 64,
}
