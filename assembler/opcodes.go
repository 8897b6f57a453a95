// opcodes.go - SIC opcode table

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

// NotInstruction is returned by Opcode for anything that is not a machine
// instruction mnemonic.
const NotInstruction byte = 0xFF

// Directives
const (
	dirSTART = "START"
	dirEND   = "END"
	dirWORD  = "WORD"
	dirBYTE  = "BYTE"
	dirRESB  = "RESB"
	dirRESW  = "RESW"
)

func isDirective(name string) bool {
	switch name {
	case dirSTART, dirEND, dirWORD, dirBYTE, dirRESB, dirRESW:
		return true
	}
	return false
}

// Instruction and word size in bytes
const wordSize = 3

// Indexed addressing flag, bit 15 of the instruction word
const (
	indexSuffix = ",X"
	indexBit    = 0x8000
	maxAddress  = 0x7FFF
)

var opcodes = map[string]byte{
	"ADD":  0x18,
	"AND":  0x40,
	"COMP": 0x28,
	"DIV":  0x24,
	"J":    0x3C,
	"JEQ":  0x30,
	"JGT":  0x34,
	"JLT":  0x38,
	"JSUB": 0x48,
	"LDA":  0x00,
	"LDCH": 0x50,
	"LDL":  0x08,
	"LDX":  0x04,
	"MUL":  0x20,
	"OR":   0x44,
	"RD":   0xD8,
	"RSUB": 0x4C,
	"STA":  0x0C,
	"STCH": 0x54,
	"STL":  0x14,
	"STSW": 0xE8,
	"STX":  0x10,
	"SUB":  0x1C,
	"TD":   0xE0,
	"TIX":  0x2C,
	"WD":   0xDC,
}

// Opcode returns the operation code for mnemonic, or NotInstruction.
func Opcode(mnemonic string) byte {
	if op, ok := opcodes[mnemonic]; ok {
		return op
	}
	return NotInstruction
}

// IsInstruction reports whether mnemonic names a machine instruction.
// Directives are not instructions.
func IsInstruction(mnemonic string) bool {
	return Opcode(mnemonic) != NotInstruction
}
