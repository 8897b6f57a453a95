// assembler.go - Two-pass SIC assembler driver

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

/*
 SIC assembler

 Input:  one instruction or directive per line, whitespace separated
         [label] opcode [operand]
         Lines starting with '.' are comments.

 Directives:
   START  hex address, optionally preceded by the program name
   END    optional entry symbol
   WORD   decimal constant, one 3-byte word
   BYTE   X'hex digits' or C'characters'
   RESB   n bytes of uninitialised storage
   RESW   n words of uninitialised storage

 Instructions take one symbolic operand, optionally indexed with ",X".

 Output: object program of Header, Text and End records
   H name(6) start(6) length(6)
   T start(6) count(2) object code (up to 30 bytes)
   E entry(6)
*/

package assembler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

const objectExt = ".obj"

// Result describes a successful assembly.
type Result struct {
	Lines       []Line
	Name        string
	Start       int
	Symbols     *SymbolTable
	Length      int // from pass 1, written to the Header record
	FinalLength int // location counter span at END in pass 2
	ObjectPath  string
}

// Assembler runs the tokenizer and both passes.
type Assembler struct {
	listingMode bool
	listing     []string
}

// NewAssembler creates a new assembler instance.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// SetListingMode enables or disables listing output.
func (a *Assembler) SetListingMode(enabled bool) {
	a.listingMode = enabled
}

// GetListing returns the assembly listing lines.
func (a *Assembler) GetListing() []string {
	return a.listing
}

func (a *Assembler) addListing(addr int, code string, line Line) {
	if len(code) > 16 {
		code = code[:16] + "..."
	}
	a.listing = append(a.listing, fmt.Sprintf("%4d  %06X  %-19s %s", line.Num, addr, code, line))
}

// Assemble reads source from r and writes the object program to w.
func (a *Assembler) Assemble(r io.Reader, w io.Writer) (*Result, error) {
	lines, err := Tokenize(r)
	if err != nil {
		return nil, err
	}
	return a.assembleLines(lines, w)
}

func (a *Assembler) assembleLines(lines []Line, w io.Writer) (*Result, error) {
	a.listing = nil

	p1, err := Pass1(lines)
	if err != nil {
		return nil, err
	}

	var list listFunc
	if a.listingMode {
		list = a.addListing
	}
	final, err := generate(w, lines, p1.Symbols, p1.Length, list)
	if err != nil {
		return nil, err
	}

	return &Result{
		Lines:       lines,
		Name:        p1.Name,
		Start:       p1.Start,
		Symbols:     p1.Symbols,
		Length:      p1.Length,
		FinalLength: final,
	}, nil
}

// AssembleFile assembles the source at path into outDir. The object file
// is only created once both passes have succeeded.
func (a *Assembler) AssembleFile(ctx context.Context, path, outDir string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("%s: %d lines", path, len(lines))

	var obj bytes.Buffer
	res, err := a.assembleLines(lines, &obj)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.ObjectPath = filepath.Join(outDir, ObjectFileName(path))
	if err := os.WriteFile(res.ObjectPath, obj.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", res.ObjectPath, err)
	}
	glog.V(1).Infof("%s: wrote %s (%d bytes)", path, res.ObjectPath, obj.Len())
	return res, nil
}

// ObjectFileName maps a source path to its object file name: the directory
// is dropped and the extension replaced, so path/to/prog.asm gives prog.obj.
func ObjectFileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + objectExt
}
