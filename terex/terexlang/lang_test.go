package terexlang

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex/scanner"
	"github.com/npillmayer/symex/terex"
)

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	lex, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	input := "sin(x_1) ^ 2 + [1.5e3, {m:2}] = y[0]"
	scan, err := lex.Scanner(input)
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Error(e)
	})
	count := 0
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		t.Logf("token = %q with value = %d", token.Lexeme(), token.TokType())
		count++
	}
	if count != 21 {
		t.Errorf("expected 21 tokens, have %d", count)
	}
}

func TestToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	if _, id := Token("NUM"); id != scanner.Float {
		t.Errorf("expected NUM to be a float token, is %d", id)
	}
	if _, id := Token("^"); id != '^' {
		t.Errorf("expected ^ to have token value '^', is %d", id)
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	for _, input := range []string{
		"x",
		"x[1]",
		"x*x+2",
		"x-(y-z)",
		"x-y-z",
		"(x^y)^z",
		"x^y^z",
		"-x^2",
		"-(x^2)",
		"x*(-2)",
		"-2*x",
		"--x",
		"x/(y*z)",
		"sin(x)^2",
		"cos(2*x)+exp(-x)",
		"sqrt(x[0]*x[1])",
		"1=1",
		"x+y=2",
		"(a=b)=c",
		"[]",
		"{}",
		"[1, x, x^2/2]",
		"{x:x+1, y:2}",
		"[[1, 2], {a:[]}]",
		"0.5",
		"1e+21",
		"-3.25",
		"2{m}",
		"9.81{m*s^-2}",
		"2{N}*x",
	} {
		e, err := Parse(input)
		if err != nil {
			t.Errorf("cannot parse %q: %v", input, err)
			continue
		}
		out := e.String()
		if out != input {
			t.Errorf("expected %q to print as itself, prints as %q", input, out)
		}
		again, err := Parse(out)
		if err != nil {
			t.Errorf("cannot re-parse %q: %v", out, err)
			continue
		}
		if !terex.Equal(e, again) {
			t.Errorf("round trip of %q does not yield an equal tree", input)
		}
	}
}

func TestPrefixExponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	e, err := Parse("x^-y")
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(e.String())
	if err != nil {
		t.Fatal(err)
	}
	if !terex.Equal(e, again) {
		t.Errorf("expected %s to re-parse to an equal tree", e)
	}
}

func TestFolding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	for _, test := range []struct {
		input, expected string
	}{
		{"1+1", "2"},
		{"2*3^2", "18"},
		{"x+2*3", "x+6"},
		{"[1,2,3,4]+[0,1,2,3]", "[1, 3, 5, 7]"},
		{"{x:1}+{x:2, y:3}", "{x:3, y:3}"},
		{"1{km}+1{m}", "1.001{km}"},
		{"1=1", "1=1"},
		{"1/0", "1/0"},
		{"[1,2,3][1]", "2"},
		{"sin(0)", "0"},
	} {
		e, err := Parse(test.input)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.input, err)
			continue
		}
		if e.String() != test.expected {
			t.Errorf("expected %q to fold to %q, is %q", test.input, test.expected, e)
		}
	}
	one, _ := Parse("1+1")
	two, _ := Parse("2")
	if !terex.Equal(one, two) {
		t.Errorf("expected 1+1 and 2 to parse to equal trees")
	}
}

func TestIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	e, err := Parse("x[1]")
	if err != nil {
		t.Fatal(err)
	}
	x, ok := e.(*terex.Index)
	if !ok {
		t.Fatalf("expected an index node, have %T", e)
	}
	if x.Base().Name() != "x" || x.Pos() != 1 {
		t.Errorf("expected x[1], have %s[%d]", x.Base(), x.Pos())
	}
	if e.String() != "x[1]" {
		t.Errorf("expected x[1] to print as x[1], is %s", e)
	}
}

func TestFunctionOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	for _, test := range []struct {
		input, expected string
	}{
		{"sin x^2", "sin(x)^2"},
		{"sin x[1]", "sin(x[1])"},
		{"sin x*y", "sin(x)*y"},
		{"ln(x+1)", "ln(x+1)"},
		{"-sin x", "-sin(x)"},
	} {
		e, err := Parse(test.input)
		if err != nil {
			t.Errorf("cannot parse %q: %v", test.input, err)
			continue
		}
		if e.String() != test.expected {
			t.Errorf("expected %q to print as %q, is %q", test.input, test.expected, e)
		}
	}
}

func TestUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	e, err := Parse("2{kg*m/s^2}")
	if err != nil {
		t.Fatal(err)
	}
	if e.String() != "2{N}" {
		t.Errorf("expected 2{N}, is %s", e)
	}
	if _, err = Parse("1{m}+1{s}"); !errors.Is(err, terex.ErrUnitMismatch) {
		t.Errorf("expected unit mismatch for 1{m}+1{s}, have %v", err)
	}
	if _, err = Parse("sin(1{m})"); !errors.Is(err, terex.ErrUnitMismatch) {
		t.Errorf("expected unit mismatch for sin(1{m}), have %v", err)
	}
	if _, err = Parse("[1,2]+[1]"); !errors.Is(err, terex.ErrLengthMismatch) {
		t.Errorf("expected length mismatch, have %v", err)
	}
	if e, err = Parse("1{m^127}"); err != nil || e.String() != "1{m^127}" {
		t.Errorf("expected 1{m^127}, have %v, %v", e, err)
	}
	for _, test := range []struct {
		input  string
		offset int
	}{
		{"1{m^128}", 4},
		{"1{m^256}", 4},
		{"1{s^-200}", 5},
		{"1{m^4000000000000}", 4},
		{"1{m^100*m^100}", 7},
	} {
		var perr *ParseError
		if _, err = Parse(test.input); !errors.As(err, &perr) || perr.Offset != test.offset {
			t.Errorf("expected parse error at %d for %q, have %v", test.offset, test.input, err)
		}
	}
	if _, err = Parse("2{m}^1e15"); !errors.Is(err, terex.ErrDomain) {
		t.Errorf("expected domain error for huge power of quantity, have %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	for _, test := range []struct {
		input  string
		offset int
	}{
		{"", 0},
		{"   ", 3},
		{"(x+1", 4},
		{"x+1)", 3},
		{"[1, 2", 5},
		{"1, 2]", 1},
		{"{x:1", 4},
		{"x+", 2},
		{"x $ y", 2},
		{"a=b=c", 3},
		{"{x:1, x:2}", 6},
		{"{1:2}", 1},
		{"{x+1:2}", 1},
		{"x[y]", 2},
		{"2{furlong}", 2},
		{"x{m}", 1},
		{"1e999", 0},
		{"x[1.5]", 2},
	} {
		_, err := Parse(test.input)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("expected a parse error for %q, have %v", test.input, err)
			continue
		}
		if perr.Offset != test.offset {
			t.Errorf("expected error for %q at offset %d, is at %d (%s)",
				test.input, test.offset, perr.Offset, perr.Msg)
		}
		t.Logf("%v\n%s", perr, perr.Context())
	}
}

func TestParseErrorContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	_, err := Parse("x + ?")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a parse error, have %v", err)
	}
	if !strings.HasSuffix(perr.Context(), "\n    ^") {
		t.Errorf("expected caret below offset 4, have\n%s", perr.Context())
	}
	if !strings.Contains(perr.Error(), "offset 4") {
		t.Errorf("expected error message to name offset 4, is %q", perr.Error())
	}
}

func TestMaxDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terexlang")
	defer teardown()
	//
	deep := strings.Repeat("(", 300) + "x" + strings.Repeat(")", 300)
	var perr *ParseError
	if _, err := Parse(deep); !errors.As(err, &perr) {
		t.Errorf("expected deeply nested input to be rejected, have %v", err)
	}
	if _, err := Parse(deep, MaxDepth(1000)); err != nil {
		t.Errorf("expected nesting of 300 to be accepted with a limit of 1000, have %v", err)
	}
	if _, err := Parse("((x))", MaxDepth(2)); !errors.As(err, &perr) {
		t.Errorf("expected nesting of 3 to be rejected with a limit of 2")
	}
}
