/*
Package runtime implements the session runtime of the expression engine,
consisting of scopes and symbol tables for named definitions.

Symbol Table and Scope Tree

A scope holds a symbol table of tags, each binding a name to a tree. Scopes
link back to a parent scope, and lookups of a name walk outward until a
scope defining the name is found. Thus an inner scope may shadow
definitions of outer scopes.

Scopes are organized as a tree, which is used like a stack: a session
pushes a new scope, defines some names, and pops the scope to forget about
them. The outermost scope holds the global definitions.

Scopes may serve as contexts for substitution, as they implement the
Resolver interface of package termr.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("symex.runtime")
}

// Runtime is a type implementing a runtime environment for a session
// of the expression engine.
type Runtime struct {
	ScopeTree *ScopeTree // collect scopes
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with an empty global scope.
//
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = NewScopeTree()
	rt.ScopeTree.PushNewScope("globals") // push global scope first
	return rt
}
