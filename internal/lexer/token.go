package lexer

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	LParen Kind = iota
	RParen
	Semi
	Colon
	Comma
	Lt
	Gt

	Plus
	Minus
	Star
	Eq

	Let
	Func

	// Value-carrying kinds. Token.Text holds the payload.
	Ident
	Str
	Int
	Num
)

var kindNames = map[Kind]string{
	LParen: "(",
	RParen: ")",
	Semi:   ";",
	Colon:  ":",
	Comma:  ",",
	Lt:     "<",
	Gt:     ">",
	Plus:   "+",
	Minus:  "-",
	Star:   "*",
	Eq:     "=",
	Let:    "let",
	Func:   "fun",
	Ident:  "identifier",
	Str:    "string",
	Int:    "integer",
	Num:    "number",
}

// String returns the lexeme for fixed tokens and the class name otherwise.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// HasText reports whether tokens of this kind carry a payload.
func (k Kind) HasText() bool {
	return k >= Ident
}

// keywords maps reserved words to their token kinds
var keywords = map[string]Kind{
	"let": Let,
	"fun": Func,
}

// Token is one lexical atom. Tokens are comparable with ==: two tokens of
// the same fixed kind are always equal, value-carrying tokens are equal only
// when their text matches too.
type Token struct {
	Kind Kind
	Text string
}

// Punct returns the token for a kind that carries no payload.
func Punct(k Kind) Token { return Token{Kind: k} }

// Identifier returns an identifier token.
func Identifier(name string) Token { return Token{Kind: Ident, Text: name} }

// StringLit returns a string literal token.
func StringLit(s string) Token { return Token{Kind: Str, Text: s} }

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("Id(%s)", t.Text)
	case Str:
		return fmt.Sprintf("Str(%q)", t.Text)
	case Int:
		return fmt.Sprintf("Int(%s)", t.Text)
	case Num:
		return fmt.Sprintf("Num(%s)", t.Text)
	}
	return fmt.Sprintf("'%s'", t.Kind)
}
