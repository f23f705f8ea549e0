// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/x86vm/dispatchgen/gen"
	"github.com/x86vm/dispatchgen/ir"
	"github.com/x86vm/dispatchgen/x86"
)

// TreeCommand displays the dispatch structure of one opcode.
func TreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <opcode>",
		Short: "Display the dispatch structure synthesized for one opcode.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opcode, err := parseOpcode(args[0])
			if err != nil {
				return err
			}
			return displayDispatchTree(cmd.OutOrStdout(), opcode)
		},

		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// displayDispatchTree renders the synthesized bodies of one opcode,
// once per operand size when the slot splits.
func displayDispatchTree(w io.Writer, opcode int) error {
	b16, b32, err := gen.SlotBodies(x86.Table, opcode)
	if err != nil {
		return err
	}
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("%02X", opcode))
	if b16 == b32 {
		constructDispatchTree(tree, b16)
	} else {
		constructDispatchTree(tree.AddBranch("os16"), b16)
		constructDispatchTree(tree.AddBranch("os32"), b32)
	}
	fmt.Fprintln(w, tree.String())
	return nil
}

// constructDispatchTree walks the statement tree in a depth-first fashion.
func constructDispatchTree(tree treeprint.Tree, n ir.Node) {
	switch n := n.(type) {
	case ir.Literal:
		tree.AddNode(string(n))
	case *ir.Call:
		output := n.Callee + "(" + strings.Join(n.Args, ", ") + ")"
		if n.Conv == ir.OrFlags {
			tree.AddMetaNode("|=", output)
		} else {
			tree.AddNode(output)
		}
	case *ir.Seq:
		for _, stmt := range n.Stmts {
			constructDispatchTree(tree, stmt)
		}
	case *ir.If:
		for _, b := range n.Branches {
			constructDispatchTree(tree.AddMetaBranch("if", b.Cond), b.Body)
		}
		if n.Else != nil {
			constructDispatchTree(tree.AddBranch("else"), n.Else)
		}
	case *ir.Switch:
		branch := tree.AddMetaBranch("match", n.Expr)
		for _, c := range n.Cases {
			constructDispatchTree(branch.AddBranch(strings.Join(c.Labels, " | ")), c.Body)
		}
		if n.Default != nil {
			constructDispatchTree(branch.AddBranch("_"), n.Default)
		}
	}
}
