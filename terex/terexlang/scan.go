package terexlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/symex/scanner"
	"github.com/npillmayer/symex/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "[", "]", "{", "}", ",", ":"}
var ops = []string{"+", "-", "*", "/", "^", "="}

// All of the tokens which are not literals
var tokens = []string{"ID", "NUM"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["NUM"] = scanner.Float
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
		for _, op := range ops {
			tokenIds[op] = int(op[0])
		}
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the lexmachine lexer for expressions. The DFA is compiled on
// first use and shared afterwards.
func Lexer() (*lexmach.LMAdapter, error) {
	lexOnce.Do(func() {
		initTokens()
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
			lexer.Add([]byte(`[0-9]+(\.[0-9]+)?([eE][\+\-]?[0-9]+)?`), makeToken("NUM"))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, append(literals, ops...), nil, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}
