// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/x86vm/dispatchgen/gen"
	"github.com/x86vm/dispatchgen/rust"
	"github.com/x86vm/dispatchgen/x86"
)

// NewRoot command.
func NewRoot() *cobra.Command {
	var (
		all   bool
		out   string
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "dispatchgen [table...]",
		Short: "dispatchgen compiles x86 encoding tables into interpreter dispatch code.",
		Example: `  dispatchgen --all
  dispatchgen interpreter interpreter0f_16
  dispatchgen tree 0FAF  # displays dispatch structure`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := selectTables(args, all)
			if err != nil {
				return err
			}
			if err := writeTables(cmd, out, tables); err != nil {
				return err
			}
			if stats {
				printStats(cmd)
			}
			return nil
		},

		// errors get double printed otherwise
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&all, "all", false, "generate every table")
	cmd.Flags().StringVar(&out, "out", filepath.Join("build", "gen"), "directory for generated sources")
	cmd.Flags().BoolVar(&stats, "stats", false, "print generator resource usage after writing")
	return cmd
}

func selectTables(args []string, all bool) ([]gen.Table, error) {
	if all {
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot combine --all with table names")
		}
		return gen.Tables(), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no tables selected, name one or pass --all")
	}
	var tables []gen.Table
	seen := make(map[gen.Table]bool)
	for _, arg := range args {
		t, err := gen.ParseTable(arg)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		tables = append(tables, t)
	}
	return tables, nil
}

// writeTables renders the selected tables and writes one source file
// per table. Everything is generated into memory first so a generation
// failure leaves no partial output behind.
func writeTables(cmd *cobra.Command, dir string, tables []gen.Table) error {
	type artifact struct {
		path string
		data []byte
	}
	var artifacts []artifact
	for _, t := range tables {
		node, err := gen.Generate(x86.Table, t)
		if err != nil {
			return fmt.Errorf("generating %v: %v", t, err)
		}
		var buf bytes.Buffer
		if err := rust.WriteTable(&buf, t.String(), node); err != nil {
			return err
		}
		artifacts = append(artifacts, artifact{
			path: filepath.Join(dir, t.String()+".rs"),
			data: buf.Bytes(),
		})
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, a := range artifacts {
		if err := os.WriteFile(a.path, a.data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.path)
	}
	return nil
}
