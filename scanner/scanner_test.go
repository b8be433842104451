package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.scanner")
	defer teardown()
	//
	s := Span{2, 7}
	if s.From() != 2 {
		t.Errorf("expected span to start at 2, is %d", s.From())
	}
	if s.String() != "(2…7)" {
		t.Errorf("expected span (2…7), is %s", s)
	}
}

func TestDefaultToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.scanner")
	defer teardown()
	//
	tok := MakeDefaultToken(Ident, "x", Span{3, 4})
	if tok.TokType() != Ident || tok.Lexeme() != "x" {
		t.Errorf("unexpected token %v", tok)
	}
	if tok.String() != `"x"@3` {
		t.Errorf("expected token to print as \"x\"@3, is %s", tok.String())
	}
	eof := MakeDefaultToken(EOF, "", Span{})
	if eof.String() != "<eof>" {
		t.Errorf("expected <eof>, is %s", eof.String())
	}
}
