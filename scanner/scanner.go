package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("symex.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF   = scanner.EOF
	Ident = scanner.Ident
	Float = scanner.Float
	Error = -64 // a token the scanner could not recognize
)

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Besides the constants above we do
// not define any, as it is up to scanners to define them. One-character
// literals usually use their rune value.
type TokType int

// Token represents an input token. Tokens are produced by a scanner and
// reflect terminals of the expression language.
//
// An example would be a token for a floating point numer:
//
//    TokType = Float       // identifier for this kind of tokens
//    Lexeme  = "3.1416"    // lexeme how it appeared in the input stream
//    Span    = 67…73       // occured from byte position 67 in the input stream
//
// Conversion of lexemes to values is left to the parser.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanner.
type DefaultToken struct {
	kind   TokType
	lexeme string
	span   Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ TokType, lexeme string, span Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		tracer().Debugf("stringer called for EOF token")
		return "<eof>"
	}
	return fmt.Sprintf("%q@%d", t.lexeme, t.span.From())
}
