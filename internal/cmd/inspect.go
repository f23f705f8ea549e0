// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/x86vm/dispatchgen/gen"
	"github.com/x86vm/dispatchgen/rust"
	"github.com/x86vm/dispatchgen/x86"
)

// InspectCommand dumps the encodings of one opcode together with the
// dispatch bodies synthesized from them.
func InspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <opcode>",
		Short: "Print the encodings and dispatch bodies of one opcode.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opcode, err := parseOpcode(args[0])
			if err != nil {
				return err
			}
			return inspectOpcode(cmd.OutOrStdout(), opcode)
		},

		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func inspectOpcode(w io.Writer, opcode int) error {
	recs := encodingsFor(opcode)
	if len(recs) == 0 {
		return fmt.Errorf("opcode %02X: no encodings", opcode)
	}
	conf := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	conf.Fdump(w, recs)

	b16, b32, err := gen.SlotBodies(x86.Table, opcode)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "os16:")
	if err := rust.Fprint(w, b16); err != nil {
		return err
	}
	if b32 != b16 {
		fmt.Fprintln(w, "os32:")
		if err := rust.Fprint(w, b32); err != nil {
			return err
		}
	}
	return nil
}

// encodingsFor returns every record sharing the opcode's slot, prefix
// variants included.
func encodingsFor(opcode int) []x86.Encoding {
	enc := x86.Encoding{Opcode: opcode}
	var recs []x86.Encoding
	for _, rec := range x86.Table {
		if rec.Extended() == enc.Extended() && rec.Byte() == enc.Byte() {
			recs = append(recs, rec)
		}
	}
	return recs
}
