// pass1.go - Symbol table construction

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
	"strconv"

	"github.com/golang/glog"
)

// Pass1Result is what pass 1 learns about a program.
type Pass1Result struct {
	Name    string
	Start   int
	Length  int
	Symbols *SymbolTable
}

type programStart struct {
	name  string
	start int
	body  []Line
}

// parseStart reads the optional START line. Without one the program is
// unnamed, starts at 0, and its first line is an ordinary line.
func parseStart(lines []Line) (programStart, error) {
	if len(lines) == 0 {
		return programStart{}, &SourceError{Err: ErrMissingEnd, Detail: "empty program"}
	}
	first := lines[0]
	if first.Opcode != dirSTART {
		return programStart{body: lines}, nil
	}
	addr, err := strconv.ParseUint(first.Operand, 16, 24)
	if err != nil {
		return programStart{}, lineError(first.Num, ErrInvalidOperand, "START address %q", first.Operand)
	}
	return programStart{name: first.Label, start: int(addr), body: lines[1:]}, nil
}

// Pass1 assigns every label its address and measures the program. The
// returned symbol table is frozen.
func Pass1(lines []Line) (*Pass1Result, error) {
	prog, err := parseStart(lines)
	if err != nil {
		return nil, err
	}
	syms := NewSymbolTable()
	loc := prog.start
	ended := false

	for _, line := range prog.body {
		if line.Label != "" {
			if err := syms.Define(line.Label, loc); err != nil {
				return nil, atLine(line.Num, err)
			}
			glog.V(2).Infof("pass 1: %s = %06X", line.Label, loc)
		}
		if line.Opcode == dirEND {
			ended = true
			break
		}
		size, err := lineFootprint(line)
		if err != nil {
			return nil, err
		}
		loc += size
		if loc > maxLocation {
			return nil, lineError(line.Num, ErrAddressOverflow, "location counter 0x%X", loc)
		}
	}

	if !ended {
		return nil, &SourceError{Err: ErrMissingEnd}
	}
	length, err := programLength(prog.start, loc)
	if err != nil {
		return nil, err
	}
	syms.Freeze()
	glog.V(1).Infof("pass 1: %d symbols, length %06X", syms.Len(), length)

	return &Pass1Result{
		Name:    prog.name,
		Start:   prog.start,
		Length:  length,
		Symbols: syms,
	}, nil
}

// programLength is the span from start to the final location counter.
func programLength(start, end int) (int, error) {
	length := end - start
	if length < 0 {
		return 0, &SourceError{Err: ErrNegativeLength, Detail: strconv.Itoa(length)}
	}
	return length, nil
}
