// source_test.go

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
	"strings"
	"testing"
)

// ============================================================================
// Label detection
// ============================================================================

func TestHasLabel(t *testing.T) {
	tests := []struct {
		tokens []string
		want   bool
	}{
		{[]string{"RSUB"}, false},
		{[]string{"FIRST", "LDA", "ALPHA"}, true},
		{[]string{"LDA", "ALPHA"}, false},
		{[]string{"RET", "RSUB"}, true},
		{[]string{"COPY", "START", "1000"}, true},
		{[]string{"START", "1000"}, false},
		{[]string{"END", "FIRST"}, false},
		{[]string{"RESW", "2"}, false},
		{[]string{"J", "WORD", "5"}, false},
	}
	for _, tt := range tests {
		if got := hasLabel(tt.tokens); got != tt.want {
			t.Errorf("hasLabel(%v) = %v, want %v", tt.tokens, got, tt.want)
		}
	}
}

// ============================================================================
// Tokenize
// ============================================================================

func TestTokenize_LineModel(t *testing.T) {
	src := "COPY START 1000\n" +
		". a comment\n" +
		"FIRST  LDA   ALPHA\n" +
		"\tSTA\tBETA,X\n" +
		"RET RSUB\n" +
		"  RSUB\n" +
		"END FIRST\n"
	lines, err := Tokenize(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []Line{
		{Num: 1, Label: "COPY", Opcode: "START", Operand: "1000"},
		{Num: 3, Label: "FIRST", Opcode: "LDA", Operand: "ALPHA"},
		{Num: 4, Opcode: "STA", Operand: "BETA,X"},
		{Num: 5, Label: "RET", Opcode: "RSUB"},
		{Num: 6, Opcode: "RSUB"},
		{Num: 7, Opcode: "END", Operand: "FIRST"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, w := range want {
		got := lines[i]
		if got.Num != w.Num || got.Label != w.Label || got.Opcode != w.Opcode || got.Operand != w.Operand {
			t.Errorf("line %d: got {%d %q %q %q}, want {%d %q %q %q}",
				i, got.Num, got.Label, got.Opcode, got.Operand, w.Num, w.Label, w.Opcode, w.Operand)
		}
	}
	if lines[1].String() != "FIRST LDA ALPHA" {
		t.Errorf("String() = %q", lines[1].String())
	}
}

func TestTokenize_CRLF(t *testing.T) {
	lines, err := Tokenize(strings.NewReader("START 0\r\n. comment\r\nEND\r\n"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(lines) != 2 || lines[1].Opcode != "END" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestTokenize_EmptyLine(t *testing.T) {
	_, err := Tokenize(strings.NewReader("START 0\n\nEND\n"))
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
	var se *SourceError
	if !errors.As(err, &se) || se.Line != 2 {
		t.Errorf("expected error on line 2, got %v", err)
	}
}

func TestTokenize_WhitespaceOnlyLine(t *testing.T) {
	_, err := Tokenize(strings.NewReader("START 0\n   \t\nEND\n"))
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
}

func TestTokenize_TooManyFields(t *testing.T) {
	_, err := Tokenize(strings.NewReader("START 0\nLDA ALPHA BETA\nEND\n"))
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name line 2: %v", err)
	}
}

func TestReadSource_Missing(t *testing.T) {
	if _, err := ReadSource("testdata/does_not_exist.asm"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
