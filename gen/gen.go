// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen compiles the encoding dataset into dispatch statement
// trees. Grouping, immediate planning, handler naming and body
// synthesis all happen here; rendering the trees as target source is
// the printer's job.
package gen

import (
	"errors"
	"fmt"

	"github.com/x86vm/dispatchgen/ir"
	"github.com/x86vm/dispatchgen/x86"
)

// Table selects one generated dispatch table.
type Table int

const (
	// TablePlain is the one-byte opcode map, size-doubled in a single
	// switch.
	TablePlain Table = iota
	// TableExt16 is the 0F map for 16-bit operand-size requests.
	TableExt16
	// TableExt32 is the 0F map for 32-bit operand-size requests.
	TableExt32
)

// Tables returns every generated table in output order.
func Tables() []Table {
	return []Table{TablePlain, TableExt16, TableExt32}
}

func (t Table) String() string {
	switch t {
	case TablePlain:
		return "interpreter"
	case TableExt16:
		return "interpreter0f_16"
	case TableExt32:
		return "interpreter0f_32"
	}
	return fmt.Sprintf("table(%d)", int(t))
}

// ParseTable resolves a table name from the command line.
func ParseTable(s string) (Table, error) {
	for _, t := range Tables() {
		if s == t.String() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown table %q (want interpreter, interpreter0f_16 or interpreter0f_32)", s)
}

// Generation failures. Every violation carries the offending opcode in
// hexadecimal and wraps one of these so callers can tell a coverage
// hole from a contradictory encoding.
var (
	ErrCoverage = errors.New("incomplete opcode coverage")
	ErrEncoding = errors.New("invalid encoding")
)

func encodingErr(rec x86.Encoding, msg string) error {
	if rec.Is(x86.Group) {
		return fmt.Errorf("opcode %02X /%d: %s: %w", rec.Opcode, rec.FixedG, msg, ErrEncoding)
	}
	return fmt.Errorf("opcode %02X: %s: %w", rec.Opcode, msg, ErrEncoding)
}

func coverageErr(ext bool, opcode int) error {
	m := "one-byte map"
	if ext {
		m = "0F map"
	}
	return fmt.Errorf("opcode %02X: no encoding on the %s: %w", opcode, m, ErrCoverage)
}

// Generate builds the dispatch statement tree of one table from the
// dataset. The whole dataset is validated regardless of the selection.
func Generate(recs []x86.Encoding, t Table) (ir.Node, error) {
	switch t {
	case TablePlain:
		return Plain(recs)
	case TableExt16:
		n, _, err := Extended(recs)
		return n, err
	case TableExt32:
		_, n, err := Extended(recs)
		return n, err
	}
	return nil, fmt.Errorf("unknown table %d", int(t))
}
