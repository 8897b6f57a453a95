// errors.go - Assembly error kinds

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
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the tokenizer and both passes wraps
// exactly one of these; test with errors.Is.
var (
	ErrMalformedLine     = errors.New("malformed line")
	ErrDuplicateSymbol   = errors.New("duplicate symbol")
	ErrUnknownDirective  = errors.New("invalid instruction/directive")
	ErrNegativeLength    = errors.New("negative program length")
	ErrUndefinedSymbol   = errors.New("undefined symbol")
	ErrInvalidOperand    = errors.New("invalid operand")
	ErrAddressOverflow   = errors.New("address out of range")
	ErrMissingEnd        = errors.New("missing END directive")
	ErrSymbolTableFrozen = errors.New("symbol table is frozen")
)

// SourceError ties an error kind to the source line it was raised on.
// Line is 0 when the error is not attached to a particular line.
type SourceError struct {
	Line   int
	Err    error
	Detail string
}

func (e *SourceError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func lineError(line int, kind error, format string, args ...interface{}) error {
	return &SourceError{Line: line, Err: kind, Detail: fmt.Sprintf(format, args...)}
}

// atLine attaches a line number to err if it is a SourceError without one.
func atLine(line int, err error) error {
	var se *SourceError
	if errors.As(err, &se) && se.Line == 0 {
		se.Line = line
	}
	return err
}
