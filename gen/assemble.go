// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"

	"github.com/x86vm/dispatchgen/ir"
	"github.com/x86vm/dispatchgen/x86"
)

func label(v int) string { return fmt.Sprintf("0x%02X", v) }

// Plain assembles the one-byte map: a single switch keyed on the
// opcode with the 32-bit operand-size request in bit 8. Size-split
// slots get one case per request; single-size slots put both labels on
// one case.
func Plain(recs []x86.Encoding) (ir.Node, error) {
	plain, _, err := buildMaps(recs)
	if err != nil {
		return nil, err
	}
	var cases []ir.Case
	for op := 0; op < 256; op++ {
		s := plain.slots[op]
		if s.os() {
			b16, err := bodyFor(s, size16)
			if err != nil {
				return nil, err
			}
			b32, err := bodyFor(s, size32)
			if err != nil {
				return nil, err
			}
			cases = append(cases,
				ir.Case{Labels: []string{label(op)}, Body: b16},
				ir.Case{Labels: []string{label(op | 0x100)}, Body: b32},
			)
		} else {
			b, err := bodyFor(s, size16)
			if err != nil {
				return nil, err
			}
			cases = append(cases, ir.Case{
				Labels: []string{label(op), label(op | 0x100)},
				Body:   b,
			})
		}
	}
	return &ir.Switch{Expr: "opcode", Cases: cases, Default: trap()}, nil
}

// Extended assembles the 0F map as two independent tables, one per
// operand-size request. Single-size slots share the identical body
// object across both, so downstream passes can spot the repetition.
func Extended(recs []x86.Encoding) (ir.Node, ir.Node, error) {
	_, ext, err := buildMaps(recs)
	if err != nil {
		return nil, nil, err
	}
	var cases16, cases32 []ir.Case
	for op := 0; op < 256; op++ {
		s := ext.slots[op]
		b16, err := bodyFor(s, size16)
		if err != nil {
			return nil, nil, err
		}
		b32 := b16
		if s.os() {
			b32, err = bodyFor(s, size32)
			if err != nil {
				return nil, nil, err
			}
		}
		cases16 = append(cases16, ir.Case{Labels: []string{label(op)}, Body: b16})
		cases32 = append(cases32, ir.Case{Labels: []string{label(op)}, Body: b32})
	}
	t16 := &ir.Switch{Expr: "opcode", Cases: cases16, Default: trap()}
	t32 := &ir.Switch{Expr: "opcode", Cases: cases32, Default: trap()}
	return t16, t32, nil
}

// SlotBodies synthesizes one opcode's bodies at both request sizes,
// for inspection. The whole dataset is validated first, and
// single-size slots return the same body twice.
func SlotBodies(recs []x86.Encoding, opcode int) (b16, b32 ir.Node, err error) {
	plain, ext, err := buildMaps(recs)
	if err != nil {
		return nil, nil, err
	}
	enc := x86.Encoding{Opcode: opcode}
	m := plain
	if enc.Extended() {
		m = ext
	}
	s := m.slots[enc.Byte()]
	b16, err = bodyFor(s, size16)
	if err != nil {
		return nil, nil, err
	}
	if !s.os() {
		return b16, b16, nil
	}
	b32, err = bodyFor(s, size32)
	if err != nil {
		return nil, nil, err
	}
	return b16, b32, nil
}
