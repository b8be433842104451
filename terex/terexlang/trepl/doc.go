/*
Package trepl/main provides an interactive command line tool (T.REPL)
for symbolic expressions. T.REPL serves as a sandbox for experiments with
substitution, differentiation and simplification of expressions.

Lines entered are either expressions, which are parsed and printed in
canonical form, or commands starting with a colon:

	:let name expr   define name in the current scope
	:sub expr        substitute all definitions into expr
	:d var expr      derivative of expr with respect to var, simplified
	:s expr          simplify expr
	:eval expr       evaluate expr numerically, using the definitions
	:latex expr      print expr as LaTeX math
	:tree expr       display expr as a tree
	:load file       load definitions from a YAML file
	:defs            list the visible definitions
	:push [name]     open a new scope
	:pop             drop the current scope
	:quit            leave T.REPL

Flags may be given on the command line or in a YAML configuration file
(flag --config), with keys named like the flags.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.trepl'
func tracer() tracing.Trace {
	return tracing.Select("symex.trepl")
}
