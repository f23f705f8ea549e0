// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir holds the statement tree that the generator builds and
// the printer turns into target source. Nodes are plain values and
// carry no target-language syntax of their own; expressions and
// literal statements are opaque text chosen by the generator.
package ir

// Node is one statement in the tree.
type Node interface {
	node()
}

// Literal is a single opaque statement line.
type Literal string

func (Literal) node() {}

// Conv selects the calling convention of a Call site.
type Conv int

const (
	// Plain discards the handler's result.
	Plain Conv = iota
	// OrFlags ORs the handler's result into the running prefix flags.
	OrFlags
)

// Call invokes a handler with an ordered list of argument expressions.
type Call struct {
	Callee string
	Args   []string
	Conv   Conv
}

func (*Call) node() {}

// Seq is an ordered statement list.
type Seq struct {
	Stmts []Node
}

func (*Seq) node() {}

// Branch is one (condition, body) arm of an If.
type Branch struct {
	Cond string
	Body Node
}

// If is a conditional chain with an optional final else body.
type If struct {
	Branches []Branch
	Else     Node
}

func (*If) node() {}

// Case is one arm of a Switch. A case may carry several labels that
// share one body.
type Case struct {
	Labels []string
	Body   Node
}

// Switch dispatches on a scrutinee expression. Default is mandatory;
// a selector value matching no case must always have somewhere to go.
type Switch struct {
	Expr    string
	Cases   []Case
	Default Node
}

func (*Switch) node() {}
