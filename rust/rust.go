// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rust renders dispatch statement trees as Rust source.
package rust

import (
	"fmt"
	"io"
	"strings"

	"github.com/x86vm/dispatchgen/ir"
)

const indent = "    "

// Header goes at the top of every generated file.
const Header = "// Generated by dispatchgen; do not edit.\n"

// WriteTable renders one dispatch table as a complete source artifact:
// the header followed by a free function taking the combined opcode
// value.
func WriteTable(w io.Writer, name string, body ir.Node) error {
	if _, err := fmt.Fprintf(w, "%s\npub unsafe fn %s(opcode: i32) {\n", Header, name); err != nil {
		return err
	}
	if err := print(w, body, 1); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// Fprint renders a statement tree at the left margin.
func Fprint(w io.Writer, n ir.Node) error { return print(w, n, 0) }

func print(w io.Writer, n ir.Node, depth int) error {
	pad := strings.Repeat(indent, depth)
	switch n := n.(type) {
	case ir.Literal:
		_, err := fmt.Fprintf(w, "%s%s\n", pad, string(n))
		return err
	case *ir.Call:
		call := fmt.Sprintf("%s(%s)", n.Callee, strings.Join(n.Args, ", "))
		if n.Conv == ir.OrFlags {
			call = "prefixes |= " + call
		}
		_, err := fmt.Fprintf(w, "%s%s;\n", pad, call)
		return err
	case *ir.Seq:
		for _, st := range n.Stmts {
			if err := print(w, st, depth); err != nil {
				return err
			}
		}
		return nil
	case *ir.If:
		for i, b := range n.Branches {
			kw := "if"
			if i > 0 {
				kw = "} else if"
			}
			if _, err := fmt.Fprintf(w, "%s%s %s {\n", pad, kw, b.Cond); err != nil {
				return err
			}
			if err := print(w, b.Body, depth+1); err != nil {
				return err
			}
		}
		if n.Else != nil {
			if _, err := fmt.Fprintf(w, "%s} else {\n", pad); err != nil {
				return err
			}
			if err := print(w, n.Else, depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s}\n", pad)
		return err
	case *ir.Switch:
		if _, err := fmt.Fprintf(w, "%smatch %s {\n", pad, n.Expr); err != nil {
			return err
		}
		inner := pad + indent
		for _, c := range n.Cases {
			if _, err := fmt.Fprintf(w, "%s%s => {\n", inner, strings.Join(c.Labels, " | ")); err != nil {
				return err
			}
			if err := print(w, c.Body, depth+2); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s},\n", inner); err != nil {
				return err
			}
		}
		if n.Default != nil {
			if _, err := fmt.Fprintf(w, "%s_ => {\n", inner); err != nil {
				return err
			}
			if err := print(w, n.Default, depth+2); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s},\n", inner); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s}\n", pad)
		return err
	}
	return fmt.Errorf("rust: cannot print %T", n)
}
