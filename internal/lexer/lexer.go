// Package lexer implements the cyascript tokenizer.
//
// Tokenize makes a single forward pass over the source and returns the
// tokens together with a line table: lines[i] is the 1-based line on which
// tokens[i] starts, and one extra trailing entry (final line + 1) lets the
// parser report a line for errors at end of input.
package lexer

import "fmt"

// LexError reports malformed input found by the tokenizer.
type LexError struct {
	Line   int
	Byte   byte // offending byte, zero when the error is not about a single byte
	Reason string
}

func (e *LexError) Error() string {
	if e.Byte != 0 {
		return fmt.Sprintf("Lex error line %d : %s %q", e.Line, e.Reason, rune(e.Byte))
	}
	return fmt.Sprintf("Lex error line %d : %s", e.Line, e.Reason)
}

// singles maps one-byte tokens to their kinds
var singles = map[byte]Kind{
	'(': LParen,
	')': RParen,
	'+': Plus,
	'-': Minus,
	'*': Star,
	';': Semi,
	'=': Eq,
	':': Colon,
	',': Comma,
	'<': Lt,
	'>': Gt,
}

// Tokenizer owns the source buffer, its cursor and the line counter for the
// duration of one Tokenize call.
type Tokenizer struct {
	src  []byte
	cur  int
	line int
	strs *Interner
}

// New creates a tokenizer positioned at the first byte of line 1.
func New(src []byte) *Tokenizer {
	return NewWithInterner(src, NewInterner())
}

// NewWithInterner creates a tokenizer that shares an interning table with
// other tokenizers, e.g. across the files of one compilation.
func NewWithInterner(src []byte, strs *Interner) *Tokenizer {
	return &Tokenizer{
		src:  src,
		line: 1,
		strs: strs,
	}
}

// Tokenize is shorthand for New(src).Tokenize().
func Tokenize(src []byte) ([]Token, []int, error) {
	return New(src).Tokenize()
}

// Tokenize scans the whole buffer. On success len(lines) == len(tokens)+1.
func (t *Tokenizer) Tokenize() ([]Token, []int, error) {
	tokens := make([]Token, 0, len(t.src)/2)
	lines := make([]int, 0, len(t.src)/2+1)

	for t.cur < len(t.src) {
		ch := t.src[t.cur]

		if ch == '\n' {
			t.line++
			t.cur++
			continue
		}
		if k, ok := singles[ch]; ok {
			tokens = append(tokens, Punct(k))
			lines = append(lines, t.line)
			t.cur++
			continue
		}

		switch {
		case ch == '#':
			t.skipComment()
		case ch == '"':
			line := t.line
			tok, err := t.readString()
			if err != nil {
				return nil, nil, err
			}
			tokens = append(tokens, tok)
			lines = append(lines, line)
		case isHeader(ch):
			tokens = append(tokens, t.readIdentifier())
			lines = append(lines, t.line)
		case isDigit(ch):
			tok, err := t.readNumber()
			if err != nil {
				return nil, nil, err
			}
			tokens = append(tokens, tok)
			lines = append(lines, t.line)
		case ch <= ' ':
			t.cur++
		default:
			return nil, nil, &LexError{Line: t.line, Byte: ch, Reason: "unexpected character"}
		}
	}

	lines = append(lines, t.line+1)
	return tokens, lines, nil
}

// skipComment consumes a '#' comment and the newline that ends it. The line
// counter is bumped even when the comment runs to end of input.
func (t *Tokenizer) skipComment() {
	for t.cur < len(t.src) && t.src[t.cur] != '\n' {
		t.cur++
	}
	t.line++
	if t.cur < len(t.src) {
		t.cur++
	}
}

// readString reads a double-quoted literal. There are no escape sequences;
// newlines inside the literal are kept and counted.
func (t *Tokenizer) readString() (Token, error) {
	startLine := t.line
	t.cur++ // opening quote
	start := t.cur
	for t.cur < len(t.src) && t.src[t.cur] != '"' {
		if t.src[t.cur] == '\n' {
			t.line++
		}
		t.cur++
	}
	if t.cur >= len(t.src) {
		return Token{}, &LexError{Line: startLine, Reason: "unterminated string"}
	}
	text := t.strs.Intern(t.src[start:t.cur])
	t.cur++ // closing quote
	return Token{Kind: Str, Text: text}, nil
}

func (t *Tokenizer) readIdentifier() Token {
	start := t.cur
	t.cur++
	for t.cur < len(t.src) && isLetter(t.src[t.cur]) {
		t.cur++
	}
	if k, ok := keywords[string(t.src[start:t.cur])]; ok {
		return Punct(k)
	}
	return Token{Kind: Ident, Text: t.strs.Intern(t.src[start:t.cur])}
}

// readNumber reads digits with an optional fractional part. A letter or
// underscore directly after the digits is rejected instead of being split
// into a number and an identifier.
func (t *Tokenizer) readNumber() (Token, error) {
	start := t.cur
	kind := Int
	for t.cur < len(t.src) && isDigit(t.src[t.cur]) {
		t.cur++
	}
	if t.cur+1 < len(t.src) && t.src[t.cur] == '.' && isDigit(t.src[t.cur+1]) {
		kind = Num
		t.cur++
		for t.cur < len(t.src) && isDigit(t.src[t.cur]) {
			t.cur++
		}
	}
	if t.cur < len(t.src) && isHeader(t.src[t.cur]) {
		return Token{}, &LexError{Line: t.line, Byte: t.src[t.cur], Reason: "malformed number literal"}
	}
	return Token{Kind: kind, Text: t.strs.Intern(t.src[start:t.cur])}, nil
}

// isHeader reports whether ch may start an identifier
func isHeader(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isLetter reports whether ch may continue an identifier
func isLetter(ch byte) bool {
	return isHeader(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
