package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex/terex/terexlang"
)

func TestYAMLConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.trepl")
	defer teardown()
	//
	r, err := yamlConfig(strings.NewReader("trace: Debug\ninit_file: x.txt\ndepth: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "trace"}})
	if err != nil || v != "Debug" {
		t.Errorf("expected trace level Debug, have %v", v)
	}
	v, _ = r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "init-file"}})
	if v != "x.txt" {
		t.Errorf("expected init-file from underscore key, have %v", v)
	}
	v, _ = r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "depth"}})
	if v != "3" {
		t.Errorf("expected number to be passed as string, have %v", v)
	}
	v, _ = r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "foo"}})
	if v != nil {
		t.Errorf("expected nil for unknown flag, have %v", v)
	}
	if _, err = yamlConfig(strings.NewReader("trace: [Debug")); err == nil {
		t.Errorf("expected error for malformed configuration")
	}
}

func TestParseFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.trepl")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "trepl.yaml")
	if err := os.WriteFile(path, []byte("trace: Error\ncontext: defs.yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cli, err := parseFlags([]string{"--config", path, "--trace", "Debug", "x", "+", "1"})
	if err != nil {
		t.Fatal(err)
	}
	if cli.Trace != "Debug" {
		t.Errorf("expected command line to override config, have %s", cli.Trace)
	}
	if cli.Context != "defs.yaml" {
		t.Errorf("expected context from config file, have %q", cli.Context)
	}
	if strings.Join(cli.Input, " ") != "x + 1" {
		t.Errorf("unexpected input arguments %v", cli.Input)
	}
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.trepl")
	defer teardown()
	//
	intp := NewIntp()
	for _, line := range []string{
		":let a 2*b",
		":push",
		":let b 3",
		":sub a+c",
	} {
		if _, err := intp.Eval(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	if intp.eng.Print(intp.lastValue) != "6+c" {
		t.Errorf("expected 6+c, have %s", intp.lastValue)
	}
	if _, err := intp.Eval(":d x 2*x^2"); err != nil || intp.eng.Print(intp.lastValue) != "4*x" {
		t.Errorf("expected derivative 4*x, have %v, %v", intp.lastValue, err)
	}
	if _, err := intp.Eval(":latex x^2/2"); err != nil {
		t.Errorf("expected LaTeX output, have %v", err)
	}
	if _, err := intp.Eval(":pop"); err != nil {
		t.Fatal(err)
	}
	if len(intp.eng.Definitions()) != 1 {
		t.Errorf("expected b to be dropped with its scope")
	}
	if _, err := intp.Eval(":pop"); err == nil {
		t.Errorf("expected error popping the global scope")
	}
	if _, err := intp.Eval(":frobnicate"); err == nil {
		t.Errorf("expected error for unknown command")
	}
	if _, err := intp.Eval("x+"); err == nil {
		t.Errorf("expected parse error")
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.trepl")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "defs.yaml")
	if err := os.WriteFile(path, []byte("g: 9.81\nh: g*t^2/2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	intp := NewIntp()
	if _, err := intp.Eval(":load " + path); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval(":sub h"); err != nil {
		t.Fatal(err)
	}
	if intp.eng.Print(intp.lastValue) != "9.81*t^2/2" {
		t.Errorf("expected 9.81*t^2/2, have %s", intp.lastValue)
	}
}

func TestTreeView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.trepl")
	defer teardown()
	//
	ll, err := leveledList(terexlang.MustParse("{a:sin(x)+1, b:[y, 2]}"))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for _, item := range ll {
		b.WriteString(strings.Repeat(".", item.Level) + item.Text + "\n")
	}
	want := "{2}\n.a:\n..+\n...sin\n....x\n...1\n.b:\n..[2]\n...y\n...2\n"
	if b.String() != want {
		t.Errorf("unexpected tree view:\n%s", b.String())
	}
}
