package lexer

// Interner hands out one canonical string per distinct text so identifiers
// and literals that repeat across a file share a single backing array.
type Interner struct {
	table map[string]string
}

// NewInterner creates an empty interning table.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]string)}
}

// Intern returns the canonical copy of the bytes.
func (in *Interner) Intern(b []byte) string {
	// map lookup with string(b) does not allocate
	if s, ok := in.table[string(b)]; ok {
		return s
	}
	s := string(b)
	in.table[s] = s
	return s
}

// Len returns the number of distinct strings held.
func (in *Interner) Len() int {
	return len(in.table)
}
