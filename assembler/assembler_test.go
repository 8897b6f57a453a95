// assembler_test.go

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
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestObjectFileName(t *testing.T) {
	tests := map[string]string{
		"path/to/prog.asm":  "prog.obj",
		"prog.asm":          "prog.obj",
		"prog":              "prog.obj",
		"dir.v2/prog.s":     "prog.obj",
		"archive.tar.asm":   "archive.tar.obj",
		"/abs/path/COPY.AS": "COPY.obj",
	}
	for in, want := range tests {
		if got := ObjectFileName(in); got != want {
			t.Errorf("ObjectFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAssembleFile_Golden(t *testing.T) {
	dir := t.TempDir()
	res, err := NewAssembler().AssembleFile(context.Background(), "testdata/sample.asm", dir)
	if err != nil {
		t.Fatalf("AssembleFile: %v", err)
	}
	if res.ObjectPath != filepath.Join(dir, "sample.obj") {
		t.Errorf("ObjectPath = %q", res.ObjectPath)
	}
	got, err := os.ReadFile(res.ObjectPath)
	if err != nil {
		t.Fatalf("reading object file: %v", err)
	}
	want, err := os.ReadFile("testdata/sample.obj")
	if err != nil {
		t.Fatalf("reading golden: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("object file mismatch:\n  got:  %q\n  want: %q", got, want)
	}
	if res.Name != "SAMPLE" || res.Start != 0x2000 || res.Length != 0x26 || res.FinalLength != 0x26 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestAssembleFile_SymbolsMatchEncoding(t *testing.T) {
	res, err := NewAssembler().AssembleFile(context.Background(), "testdata/sample.asm", t.TempDir())
	if err != nil {
		t.Fatalf("AssembleFile: %v", err)
	}
	want := map[string]int{
		"FIRST": 0x2000, "LOOP": 0x2003, "STR": 0x2012, "EOF": 0x2017,
		"ZERO": 0x2018, "LEN": 0x201B, "BUF": 0x201E, "TAIL": 0x2023,
	}
	if got := res.Symbols.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("symbols = %v, want %v", got, want)
	}
}

func TestAssembleFile_NoObjectOnError(t *testing.T) {
	for _, src := range []string{"testdata/dup.asm", "testdata/undefined.asm"} {
		dir := t.TempDir()
		_, err := NewAssembler().AssembleFile(context.Background(), src, dir)
		if err == nil {
			t.Fatalf("%s: expected error", src)
		}
		if _, statErr := os.Stat(filepath.Join(dir, ObjectFileName(src))); !os.IsNotExist(statErr) {
			t.Errorf("%s: object file should not exist after a failed assembly", src)
		}
	}
}

func TestAssembleFile_ErrorKinds(t *testing.T) {
	_, err := NewAssembler().AssembleFile(context.Background(), "testdata/dup.asm", t.TempDir())
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("dup.asm: expected ErrDuplicateSymbol, got %v", err)
	}
	_, err = NewAssembler().AssembleFile(context.Background(), "testdata/undefined.asm", t.TempDir())
	if !errors.Is(err, ErrUndefinedSymbol) {
		t.Errorf("undefined.asm: expected ErrUndefinedSymbol, got %v", err)
	}
}

func TestAssembleFile_MissingSource(t *testing.T) {
	_, err := NewAssembler().AssembleFile(context.Background(), "testdata/nope.asm", t.TempDir())
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestAssembleFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := t.TempDir()
	_, err := NewAssembler().AssembleFile(ctx, "testdata/sample.asm", dir)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "sample.obj")); !os.IsNotExist(statErr) {
		t.Error("cancelled assembly must not write an object file")
	}
}

func TestAssembler_Listing(t *testing.T) {
	asm := NewAssembler()
	asm.SetListingMode(true)
	var out strings.Builder
	_, err := asm.Assemble(strings.NewReader("COPY START 1000\nFIRST LDA ALPHA\nALPHA WORD 5\nEND FIRST\n"), &out)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	listing := asm.GetListing()
	want := [][]string{
		{"1", "001000", "COPY", "START", "1000"},
		{"2", "001000", "001003", "FIRST", "LDA", "ALPHA"},
		{"3", "001003", "000005", "ALPHA", "WORD", "5"},
		{"4", "001006", "END", "FIRST"},
	}
	if len(listing) != len(want) {
		t.Fatalf("expected %d listing lines, got %d: %q", len(want), len(listing), listing)
	}
	for i := range want {
		if got := strings.Fields(listing[i]); !reflect.DeepEqual(got, want[i]) {
			t.Errorf("listing line %d = %q, want fields %v", i, listing[i], want[i])
		}
	}
}

func TestAssembler_ListingOffByDefault(t *testing.T) {
	asm := NewAssembler()
	var out strings.Builder
	if _, err := asm.Assemble(strings.NewReader("START 0\nRSUB\nEND\n"), &out); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(asm.GetListing()) != 0 {
		t.Errorf("listing should be empty, got %q", asm.GetListing())
	}
}

func TestAssembler_ListingTruncatesLongConstants(t *testing.T) {
	asm := NewAssembler()
	asm.SetListingMode(true)
	var out strings.Builder
	if _, err := asm.Assemble(strings.NewReader("START 0\nBYTE C'ABCDEFGHIJ'\nEND\n"), &out); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !strings.Contains(asm.GetListing()[1], "4142434445464748...") {
		t.Errorf("long constant should be truncated: %q", asm.GetListing()[1])
	}
}
