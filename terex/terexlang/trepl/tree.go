package main

import (
	"fmt"

	"github.com/npillmayer/symex/terex"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// renderTree displays an expression as a tree on a terminal.
func renderTree(t terex.Expr) error {
	ll, err := leveledList(t)
	if err != nil {
		return err
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func leveledList(t terex.Expr) (pterm.LeveledList, error) {
	tv := &treeView{}
	if _, err := terex.Visit[struct{}](t, tv); err != nil {
		return nil, err
	}
	return tv.list, nil
}

// treeView collects tree nodes as a leveled list, one item per node,
// children one level deeper than their parent.
type treeView struct {
	level int
	list  pterm.LeveledList
}

var _ terex.Visitor[struct{}] = (*treeView)(nil)

func (tv *treeView) add(text string) (struct{}, error) {
	tv.list = append(tv.list, pterm.LeveledListItem{Level: tv.level, Text: text})
	return struct{}{}, nil
}

func (tv *treeView) children(label string, es ...terex.Expr) (struct{}, error) {
	tv.add(label)
	tv.level++
	defer func() { tv.level-- }()
	for _, e := range es {
		if _, err := terex.Visit[struct{}](e, tv); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, nil
}

func (tv *treeView) VisitLiteral(l *terex.Literal) (struct{}, error) {
	return tv.add(l.String())
}

func (tv *treeView) VisitSymbol(s *terex.Symbol) (struct{}, error) {
	return tv.add(s.Name())
}

func (tv *treeView) VisitBinary(b *terex.BinaryOp) (struct{}, error) {
	return tv.children(b.Op().String(), b.Left(), b.Right())
}

func (tv *treeView) VisitUnary(u *terex.UnaryOp) (struct{}, error) {
	return tv.children(u.Func().String(), u.Arg())
}

func (tv *treeView) VisitIndex(x *terex.Index) (struct{}, error) {
	return tv.add(x.String())
}

func (tv *treeView) VisitSequence(s *terex.Sequence) (struct{}, error) {
	return tv.children(fmt.Sprintf("[%d]", s.Len()), s.Elements()...)
}

func (tv *treeView) VisitMapping(m *terex.Mapping) (struct{}, error) {
	tv.add(fmt.Sprintf("{%d}", m.Len()))
	tv.level++
	defer func() { tv.level-- }()
	for _, e := range m.Entries() {
		if _, err := tv.children(e.Key.Name()+":", e.Value); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, nil
}
