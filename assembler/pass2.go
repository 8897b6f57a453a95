// pass2.go - Object code generation

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
	"fmt"
	"io"

	"github.com/golang/glog"
)

// listFunc receives each line with its address and encoded object text.
type listFunc func(addr int, code string, line Line)

// Pass2 encodes lines against the symbols found by Pass1 and writes the
// object program to w. It returns the length of the program as counted
// during encoding.
func Pass2(w io.Writer, lines []Line, syms *SymbolTable, length int) (int, error) {
	return generate(w, lines, syms, length, nil)
}

func generate(w io.Writer, lines []Line, syms *SymbolTable, length int, list listFunc) (int, error) {
	prog, err := parseStart(lines)
	if err != nil {
		return 0, err
	}
	out := &objectWriter{w: w}
	out.write(headerRecord(prog.name, prog.start, length))
	if list != nil && len(lines) > len(prog.body) {
		list(prog.start, "", lines[0])
	}

	text := &textRecorder{out: out, start: prog.start}
	loc := prog.start

	for _, line := range prog.body {
		if line.Opcode == dirEND {
			text.flush()
			target := prog.start
			if line.Operand != "" {
				addr, ok := syms.Lookup(line.Operand)
				if !ok {
					return 0, lineError(line.Num, ErrUndefinedSymbol, "%s", line.Operand)
				}
				target = addr
			}
			if list != nil {
				list(loc, "", line)
			}
			out.write(endRecord(target))
			if out.err != nil {
				return 0, fmt.Errorf("writing object program: %w", out.err)
			}
			glog.V(1).Infof("pass 2: entry %06X, length %06X", target, loc-prog.start)
			return loc - prog.start, nil
		}

		var code string
		size := 0
		switch {
		case IsInstruction(line.Opcode):
			code, err = encodeInstruction(line, syms)
			size = wordSize
		case line.Opcode == dirWORD:
			code, err = wordConstant(line)
			size = wordSize
		case line.Opcode == dirBYTE:
			code, err = byteConstant(line)
			size = len(code) / 2
		case line.Opcode == dirRESB, line.Opcode == dirRESW:
			size, err = lineFootprint(line)
			text.reserve()
		default:
			err = lineError(line.Num, ErrUnknownDirective, "opcode %q", line.Opcode)
		}
		if err != nil {
			return 0, err
		}

		text.emit(loc, code)
		if list != nil {
			list(loc, code, line)
		}
		loc += size
		if out.err != nil {
			return 0, fmt.Errorf("writing object program: %w", out.err)
		}
	}

	return 0, &SourceError{Err: ErrMissingEnd}
}
