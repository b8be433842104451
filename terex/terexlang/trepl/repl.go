package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/native"
	"github.com/npillmayer/symex/terex"
	"github.com/npillmayer/symex/terex/terexlang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// traceKeys are the tracers of all packages taking part in a session.
var traceKeys = []string{
	"symex", "symex.trepl", "symex.terex", "symex.terexlang", "symex.termr",
	"symex.native", "symex.numeric", "symex.runtime",
}

// main() starts an interactive CLI ("T.REPL"), where users may enter
// expressions and commands. T.REPL will execute each line and print out
// the result.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	cli, err := parseFlags(os.Args[1:])
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to TREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", cli.Trace)
	setTraceLevel(traceLevel(cli.Trace)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("trepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := NewIntp()
	intp.repl = repl
	if cli.Context != "" {
		if err = intp.load(cli.Context); err != nil {
			intp.printError(err)
			os.Exit(2)
		}
	}
	if input := strings.TrimSpace(strings.Join(cli.Input, " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err = intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands / expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(cli.Init)         // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	eng       *symex.Engine
	repl      *readline.Instance
	lastValue terex.Expr
	scopes    int // number of scopes pushed by the user
}

// NewIntp creates an interpreter with an empty session.
func NewIntp() *Intp {
	return &Intp{eng: symex.New()}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue // error has been displayed
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a line of input, which is either an expression or a
// command. It returns true if the user asked to quit.
//
func (intp *Intp) Eval(line string) (bool, error) {
	quit, err := intp.execute(line)
	if err != nil {
		intp.printError(err)
	}
	return quit, err
}

func (intp *Intp) execute(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.show(intp.eng.Parse(line))
	}
	cmd, args, _ := strings.Cut(line[1:], " ")
	args = strings.TrimSpace(args)
	tracer().Debugf("command %q, args %q", cmd, args)
	switch cmd {
	case "quit", "q":
		return true, nil
	case "let":
		name, expr, ok := strings.Cut(args, " ")
		if !ok {
			return false, fmt.Errorf("usage: :let name expr")
		}
		if err := intp.eng.Define(name, strings.TrimSpace(expr)); err != nil {
			return false, err
		}
		pterm.Info.Printf("%s defined\n", name)
	case "sub":
		return false, intp.show(intp.eng.Resolve(args))
	case "d":
		v, expr, ok := strings.Cut(args, " ")
		if !ok {
			return false, fmt.Errorf("usage: :d var expr")
		}
		d, err := intp.eng.Derivative(expr, v)
		if err != nil {
			return false, err
		}
		return false, intp.show(intp.eng.Simplify(d))
	case "s":
		return false, intp.show(intp.eng.Simplify(args))
	case "eval":
		v, err := intp.eng.Evaluate(args, nil)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(fmt.Sprint(v))
	case "latex":
		t, err := intp.eng.Parse(args)
		if err != nil {
			return false, err
		}
		intp.lastValue = t
		pterm.Info.Println(intp.eng.Latex(t))
	case "tree":
		t, err := intp.eng.Parse(args)
		if err != nil {
			return false, err
		}
		return false, renderTree(t)
	case "load":
		return false, intp.load(args)
	case "defs":
		for _, tag := range intp.eng.Definitions() {
			pterm.Info.Printf("%s = %s\n", tag.Name(), intp.eng.Print(tag.Value))
		}
	case "push":
		intp.scopes++
		if args == "" {
			args = fmt.Sprintf("scope-%d", intp.scopes)
		}
		intp.eng.PushScope(args)
	case "pop":
		if err := intp.eng.PopScope(); err != nil {
			return false, err
		}
		intp.scopes--
	default:
		return false, fmt.Errorf("unknown command :%s", cmd)
	}
	return false, nil
}

// show prints a result tree and remembers it as the last value.
func (intp *Intp) show(t terex.Expr, err error) error {
	if err != nil {
		return err
	}
	intp.lastValue = t
	pterm.Info.Println(intp.eng.Print(t))
	return nil
}

// load defines every entry of a YAML mapping in the current scope.
func (intp *Intp) load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	ctx, err := native.FromYAML(data)
	if err != nil {
		return err
	}
	m, ok := ctx.(*terex.Mapping)
	if !ok {
		return terex.TypeMismatchError("file %s does not contain a mapping", filename)
	}
	for _, entry := range m.Entries() {
		if err = intp.eng.Define(entry.Key.Name(), entry.Value); err != nil {
			return err
		}
	}
	tracer().Infof("loaded %d definitions from %s", m.Len(), filename)
	return nil
}

func (intp *Intp) printError(err error) {
	var perr *terexlang.ParseError
	if errors.As(err, &perr) {
		pterm.Error.Println(perr.Error())
		pterm.Println(perr.Context())
		return
	}
	pterm.Error.Println(err.Error())
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
