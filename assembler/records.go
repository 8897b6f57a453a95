// records.go - Header, Text and End object records

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

const (
	maxTextBytes  = 30
	programNameSz = 6
)

func headerRecord(name string, start, length int) string {
	if len(name) > programNameSz {
		name = name[:programNameSz]
	}
	return fmt.Sprintf("H%-6s%06X%06X\n", name, start, length)
}

func textRecord(start int, data string) string {
	return fmt.Sprintf("T%06X%02X%s\n", start, len(data)/2, data)
}

// The End record has no trailing newline.
func endRecord(addr int) string {
	return fmt.Sprintf("E%06X", addr)
}

// objectWriter writes records and keeps the first write error.
type objectWriter struct {
	w   io.Writer
	err error
}

func (o *objectWriter) write(record string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, record)
}

type recordState int

const (
	recordNormal recordState = iota
	recordForceNew
)

// textRecorder packs consecutive object bytes into Text records of at most
// maxTextBytes. After reserve the next emit always opens a new record.
type textRecorder struct {
	out   *objectWriter
	start int
	data  []byte
	state recordState
}

func (t *textRecorder) reserve() {
	t.state = recordForceNew
}

func (t *textRecorder) emit(addr int, hexText string) {
	n := len(hexText) / 2
	if n == 0 {
		return
	}
	if len(t.data) > 0 && (t.state == recordForceNew || addr+n-t.start > maxTextBytes) {
		t.flush()
	}
	t.state = recordNormal
	for len(hexText)/2 > maxTextBytes {
		t.out.write(textRecord(addr, hexText[:maxTextBytes*2]))
		addr += maxTextBytes
		hexText = hexText[maxTextBytes*2:]
	}
	if len(t.data) == 0 {
		t.start = addr
	}
	t.data = append(t.data, hexText...)
}

func (t *textRecorder) flush() {
	if len(t.data) == 0 {
		return
	}
	glog.V(2).Infof("text record at %06X, %d bytes", t.start, len(t.data)/2)
	t.out.write(textRecord(t.start, string(t.data)))
	t.data = t.data[:0]
}
