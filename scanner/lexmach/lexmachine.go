package lexmach

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symex/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'symex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("symex.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: input, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   string
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Unrecognized input is passed to the error handler and then returned as a
// token of type scanner.Error. The scanner skips the offending bytes, so
// clients may continue to call NextToken.
func (lms *LMScanner) NextToken() scanner.Token {
	end := uint64(len(lms.input))
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			next := max(ui.FailTC, ui.StartTC+1, lms.scanner.TC)
			next = min(next, len(lms.input))
			lms.scanner.TC = next
			return scanner.MakeDefaultToken(scanner.Error, lms.input[ui.StartTC:next],
				scanner.Span{uint64(ui.StartTC), uint64(next)})
		}
		return scanner.MakeDefaultToken(scanner.Error, "", scanner.Span{end, end})
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", scanner.Span{end, end})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d = %q", token.Type, token.Lexeme)
	from := uint64(token.TC)
	return scanner.MakeDefaultToken(
		scanner.TokType(token.Type),
		string(token.Lexeme),
		scanner.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
