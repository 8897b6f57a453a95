// encode.go - Instruction and constant encoding

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

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// 24-bit word limits for WORD constants. Negative values are stored in
// two's complement.
const (
	minWordValue = -(1 << 23)
	maxWordValue = 1<<24 - 1
	wordMask     = 1<<24 - 1
)

// Highest address a 6 hex digit record field can hold
const maxLocation = 0xFFFFFF

func formatWord(v int) string {
	return fmt.Sprintf("%06X", v&wordMask)
}

// encodeInstruction builds the 24-bit instruction word for line as
// opcode*65536 + indexing flag + operand address, truncated to 24 bits.
// Addresses above 0x7FFF run into the indexing flag and the opcode.
func encodeInstruction(line Line, syms *SymbolTable) (string, error) {
	word := int(Opcode(line.Opcode)) << 16
	operand := line.Operand
	if strings.HasSuffix(operand, indexSuffix) {
		word += indexBit
		operand = strings.TrimSuffix(operand, indexSuffix)
		if operand == "" {
			return "", lineError(line.Num, ErrInvalidOperand, "indexed operand %q has no address", line.Operand)
		}
	}
	if operand != "" {
		addr, ok := syms.Lookup(operand)
		if !ok {
			return "", lineError(line.Num, ErrUndefinedSymbol, "%s", operand)
		}
		if addr > maxAddress {
			glog.Warningf("line %d: %s = 0x%X overlaps the indexing bit", line.Num, operand, addr)
		}
		word += addr
	}
	return formatWord(word), nil
}

// wordConstant encodes the decimal operand of a WORD directive.
func wordConstant(line Line) (string, error) {
	v, err := strconv.Atoi(line.Operand)
	if err != nil {
		return "", lineError(line.Num, ErrInvalidOperand, "WORD value %q", line.Operand)
	}
	if v < minWordValue || v > maxWordValue {
		return "", lineError(line.Num, ErrInvalidOperand, "WORD value %d does not fit in 24 bits", v)
	}
	return formatWord(v), nil
}

// byteConstant returns the hex text of a BYTE operand, X'...' or C'...'.
// The object byte count is len(result)/2.
func byteConstant(line Line) (string, error) {
	op := line.Operand
	if len(op) < 3 || op[1] != '\'' || op[len(op)-1] != '\'' {
		return "", lineError(line.Num, ErrInvalidOperand, "BYTE constant %q", op)
	}
	body := op[2 : len(op)-1]
	switch op[0] {
	case 'X':
		if len(body)%2 != 0 {
			return "", lineError(line.Num, ErrInvalidOperand, "odd number of hex digits in %q", op)
		}
		if _, err := hex.DecodeString(body); err != nil {
			return "", lineError(line.Num, ErrInvalidOperand, "bad hex digits in %q", op)
		}
		return strings.ToUpper(body), nil
	case 'C':
		return strings.ToUpper(hex.EncodeToString([]byte(body))), nil
	}
	return "", lineError(line.Num, ErrInvalidOperand, "BYTE constant %q must start with X or C", op)
}

// reserveCount parses the decimal operand of RESB/RESW. A count larger than
// the address space is rejected before it is scaled to bytes.
func reserveCount(line Line) (int, error) {
	n, err := strconv.Atoi(line.Operand)
	if err != nil || n < 0 {
		return 0, lineError(line.Num, ErrInvalidOperand, "%s count %q", line.Opcode, line.Operand)
	}
	if n > maxLocation {
		return 0, lineError(line.Num, ErrAddressOverflow, "%s count %d exceeds the address space", line.Opcode, n)
	}
	return n, nil
}

// lineFootprint returns how many bytes of address space line occupies.
func lineFootprint(line Line) (int, error) {
	switch {
	case IsInstruction(line.Opcode), line.Opcode == dirWORD:
		return wordSize, nil
	case line.Opcode == dirBYTE:
		data, err := byteConstant(line)
		if err != nil {
			return 0, err
		}
		return len(data) / 2, nil
	case line.Opcode == dirRESB:
		return reserveCount(line)
	case line.Opcode == dirRESW:
		n, err := reserveCount(line)
		return n * wordSize, err
	}
	return 0, lineError(line.Num, ErrUnknownDirective, "opcode %q", line.Opcode)
}
