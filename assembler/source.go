// source.go - Source tokenizer and line model

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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
)

const commentChar = '.'

// Line is one non-comment source line. Label and Operand may be empty.
type Line struct {
	Num     int
	Tokens  []string
	Label   string
	Opcode  string
	Operand string
}

func (l Line) String() string {
	return strings.Join(l.Tokens, " ")
}

// hasLabel decides whether the first token of a line is a label. A line is
// labeled iff it has more than one token and its first token is neither a
// machine instruction mnemonic nor a directive. A label spelled like a
// mnemonic is therefore never seen as a label.
func hasLabel(tokens []string) bool {
	return len(tokens) > 1 && !IsInstruction(tokens[0]) && !isDirective(tokens[0])
}

func newLine(num int, tokens []string) (Line, error) {
	l := Line{Num: num, Tokens: tokens}
	rest := tokens
	if hasLabel(tokens) {
		l.Label = tokens[0]
		rest = tokens[1:]
	}
	if len(rest) > 2 {
		return Line{}, lineError(num, ErrMalformedLine, "unexpected field %q", rest[2])
	}
	l.Opcode = rest[0]
	if len(rest) == 2 {
		l.Operand = rest[1]
	}
	return l, nil
}

// Tokenize splits source text into lines, dropping comment lines. A line
// with no first character is an error.
func Tokenize(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			return nil, lineError(num, ErrMalformedLine, "empty line")
		}
		if text[0] == commentChar {
			continue
		}
		tokens := strings.Fields(text)
		if len(tokens) == 0 {
			return nil, lineError(num, ErrMalformedLine, "blank line")
		}
		line, err := newLine(num, tokens)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	glog.V(2).Infof("tokenized %d lines (%d source lines)", len(lines), num)
	return lines, nil
}

// ReadSource tokenizes the file at path.
func ReadSource(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()
	return Tokenize(f)
}
