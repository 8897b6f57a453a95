// symtab.go - Symbol table

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

// Symbol is a label and the address it was defined at.
type Symbol struct {
	Name string
	Addr int
}

// SymbolTable maps labels to absolute addresses. Names are case-sensitive
// and may be defined once. After Freeze the table is read-only.
type SymbolTable struct {
	addrs  map[string]int
	order  []string
	frozen bool
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addrs: make(map[string]int)}
}

// Define records name at addr.
func (s *SymbolTable) Define(name string, addr int) error {
	if s.frozen {
		return &SourceError{Err: ErrSymbolTableFrozen, Detail: name}
	}
	if _, exists := s.addrs[name]; exists {
		return &SourceError{Err: ErrDuplicateSymbol, Detail: name}
	}
	s.addrs[name] = addr
	s.order = append(s.order, name)
	return nil
}

// Lookup returns the address of name.
func (s *SymbolTable) Lookup(name string) (int, bool) {
	addr, ok := s.addrs[name]
	return addr, ok
}

// Freeze makes the table read-only.
func (s *SymbolTable) Freeze() {
	s.frozen = true
}

// Frozen reports whether Freeze has been called.
func (s *SymbolTable) Frozen() bool {
	return s.frozen
}

// Len returns the number of symbols.
func (s *SymbolTable) Len() int {
	return len(s.order)
}

// Symbols returns every symbol in definition order.
func (s *SymbolTable) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(s.order))
	for _, name := range s.order {
		syms = append(syms, Symbol{Name: name, Addr: s.addrs[name]})
	}
	return syms
}

// Map returns a copy of the table as a plain map.
func (s *SymbolTable) Map() map[string]int {
	m := make(map[string]int, len(s.addrs))
	for name, addr := range s.addrs {
		m[name] = addr
	}
	return m
}
