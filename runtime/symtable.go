package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/symex/terex"
	"github.com/npillmayer/symex/terex/termr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Symbol table for definitions. Symbol tables are attached to scopes.
// Scopes are organized in a tree.
//

// --- Tags -------------------------------------------------------

// Tag is the type of entries of symbol tables. It binds a name to a tree.
// It is not called 'Symbol' to avoid confusion with symbols of
// expressions: the name of a tag is usually the name of a symbol, and the
// tag's value is what the symbol will be substituted with.
//
type Tag struct {
	name  string
	Value terex.Expr
}

// NewTag creates a new tag.
func NewTag(nm string, value terex.Expr) *Tag {
	return &Tag{name: nm, Value: value}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s' = %v>", s.name, s.Value)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.table[tagname]
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites an existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string, value terex.Expr) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname, value)
	old := t.table[tagname]
	t.table[tagname] = tag
	return tag, old
}

// RemoveTag deletes a tag from the table and returns it, if present.
func (t *SymbolTable) RemoveTag(tagname string) *Tag {
	tag := t.table[tagname]
	delete(t.table, tagname)
	return tag
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.table)
}

// Names returns the names of all tags, sorted.
func (t *SymbolTable) Names() []string {
	names := maps.Keys(t.table)
	slices.Sort(names)
	return names
}

// Each iterates over each tag in the table in order of names, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for _, name := range t.Names() {
		mapper(name, t.table[name])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain definitions. Scopes link back to a
// parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

var _ termr.Resolver = (*Scope)(nil)

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// Define binds a name to a tree in the scope. Returns the new tag and the
// previously stored tag under this key, if any.
//
func (s *Scope) Define(tagname string, value terex.Expr) (*Tag, *Tag) {
	tracer().Debugf("%s: define %s = %v", s.Name, tagname, value)
	return s.symtab.DefineTag(tagname, value)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-tree-path) the tag was found in.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// Resolve finds the tree bound to a name in this scope or in one of its
// ancestors. It is part of interface termr.Resolver.
func (s *Scope) Resolve(name string) (terex.Expr, bool) {
	tag, _ := s.ResolveTag(name)
	if tag == nil || tag.Value == nil {
		return nil, false
	}
	return tag.Value, true
}

// Visible returns all tags visible from this scope, in order of names.
// Tags of inner scopes shadow tags of outer scopes with the same name.
func (s *Scope) Visible() []*Tag {
	seen := make(map[string]*Tag)
	for sc := s; sc != nil; sc = sc.Parent {
		sc.symtab.Each(func(name string, tag *Tag) {
			if _, shadowed := seen[name]; !shadowed {
				seen[name] = tag
			}
		})
	}
	names := maps.Keys(seen)
	slices.Sort(names)
	tags := make([]*Tag, len(names))
	for i, name := range names {
		tags[i] = seen[name]
	}
	return tags
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack, thus building a tree from scopes
// which are pushed and popped to/from the stack.
//
type ScopeTree struct {
	stack *arraystack.Stack
	base  *Scope
}

// NewScopeTree creates an empty scope tree.
func NewScopeTree() *ScopeTree {
	return &ScopeTree{stack: arraystack.New()}
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	tos, ok := scst.stack.Peek()
	if !ok {
		panic("attempt to access scope from empty stack")
	}
	return tos.(*Scope)
}

// Globals gets the outermost scope, containing global symbols.
func (scst *ScopeTree) Globals() *Scope {
	if scst.base == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.base
}

// Depth returns the number of scopes on the stack.
func (scst *ScopeTree) Depth() int {
	return scst.stack.Size()
}

// PushNewScope pushes a scope onto the stack of scopes. A scope is constructed,
// including a symbol table for definitions.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	var parent *Scope
	if tos, ok := scst.stack.Peek(); ok {
		parent = tos.(*Scope)
	}
	newsc := NewScope(nm, parent)
	if parent == nil { // the new scope is the global scope
		scst.base = newsc // make new scope anchor
	}
	scst.stack.Push(newsc) // new scope now TOS
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope. The global scope cannot be
// popped; PopScope returns an error if asked to.
func (scst *ScopeTree) PopScope() (*Scope, error) {
	if scst.stack.Size() <= 1 {
		return nil, fmt.Errorf("cannot pop global scope")
	}
	tos, _ := scst.stack.Pop()
	sc := tos.(*Scope)
	tracer().Debugf("popping scope [%s]", sc.Name)
	return sc, nil
}
