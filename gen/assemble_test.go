// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/x86vm/dispatchgen/ir"
	"github.com/x86vm/dispatchgen/x86"
)

func plainCases(t *testing.T) map[string]ir.Node {
	t.Helper()
	node, err := Plain(x86.Table)
	if err != nil {
		t.Fatalf("Plain() error = %v", err)
	}
	sw, ok := node.(*ir.Switch)
	if !ok {
		t.Fatalf("Plain() = %T, want *ir.Switch", node)
	}
	if sw.Expr != "opcode" {
		t.Fatalf("Plain() switch expr = %q, want \"opcode\"", sw.Expr)
	}
	if sw.Default == nil {
		t.Fatal("Plain() switch has no default")
	}
	bodies := make(map[string]ir.Node)
	for _, c := range sw.Cases {
		for _, l := range c.Labels {
			if _, ok := bodies[l]; ok {
				t.Fatalf("duplicate case label %s", l)
			}
			bodies[l] = c.Body
		}
	}
	return bodies
}

func TestPlainTotality(t *testing.T) {
	bodies := plainCases(t)
	if len(bodies) != 512 {
		t.Fatalf("case labels = %d, want 512", len(bodies))
	}
	for op := 0; op < 256; op++ {
		if bodies[label(op)] == nil {
			t.Errorf("label %s missing", label(op))
		}
		if bodies[label(op|0x100)] == nil {
			t.Errorf("label %s missing", label(op|0x100))
		}
	}
}

func TestPlainSizeSplit(t *testing.T) {
	bodies := plainCases(t)
	if got := render(t, bodies["0x05"]); !strings.Contains(got, "instr16_05(read_imm16());") {
		t.Errorf("case 0x05 =\n%s\nwant the 16-bit body", got)
	}
	if got := render(t, bodies["0x105"]); !strings.Contains(got, "instr32_05(read_imm32s());") {
		t.Errorf("case 0x105 =\n%s\nwant the 32-bit body", got)
	}
	if bodies["0x00"] != bodies["0x100"] {
		t.Error("single-size slot emitted twice instead of sharing one case")
	}
}

func TestExtendedTables(t *testing.T) {
	t16, t32, err := Extended(x86.Table)
	if err != nil {
		t.Fatalf("Extended() error = %v", err)
	}
	sw16, ok := t16.(*ir.Switch)
	if !ok {
		t.Fatalf("Extended() 16-bit table = %T, want *ir.Switch", t16)
	}
	sw32 := t32.(*ir.Switch)
	if len(sw16.Cases) != 256 || len(sw32.Cases) != 256 {
		t.Fatalf("cases = (%d, %d), want 256 each", len(sw16.Cases), len(sw32.Cases))
	}
	for op := 0; op < 256; op++ {
		want := label(op)
		if got := sw16.Cases[op].Labels[0]; got != want {
			t.Fatalf("16-bit case %d label = %s, want %s", op, got, want)
		}
	}
	if sw16.Default == nil || sw32.Default == nil {
		t.Error("extended tables need default cases")
	}
}

func TestExtendedSharing(t *testing.T) {
	t16, t32, err := Extended(x86.Table)
	if err != nil {
		t.Fatalf("Extended() error = %v", err)
	}
	sw16 := t16.(*ir.Switch)
	sw32 := t32.(*ir.Switch)
	if sw16.Cases[0x10].Body != sw32.Cases[0x10].Body {
		t.Error("single-size 0F slot got distinct bodies per size")
	}
	if sw16.Cases[0xAF].Body == sw32.Cases[0xAF].Body {
		t.Error("size-split 0F slot shares one body")
	}
	if got := render(t, sw16.Cases[0xAF].Body); !strings.Contains(got, "instr16_0FAF_mem") {
		t.Errorf("16-bit 0FAF body =\n%s", got)
	}
	if got := render(t, sw32.Cases[0xAF].Body); !strings.Contains(got, "instr32_0FAF_mem") {
		t.Errorf("32-bit 0FAF body =\n%s", got)
	}
}

func TestPlainGroupCompleteness(t *testing.T) {
	bodies := plainCases(t)
	got := render(t, bodies["0x80"])
	if !strings.Contains(got, "let modrm_byte = read_modrm_byte();") {
		t.Errorf("case 0x80 misses the modrm read:\n%s", got)
	}
	for g := 0; g < 8; g++ {
		for _, suffix := range []string{"_mem", "_reg"} {
			want := "instr_80_" + strconv.Itoa(g) + suffix
			if !strings.Contains(got, want) {
				t.Errorf("case 0x80 misses %s:\n%s", want, got)
			}
		}
	}
	if !strings.Contains(got, "trigger_ud();") {
		t.Errorf("case 0x80 misses the trap default:\n%s", got)
	}
}

func collectCallees(n ir.Node, out *[]string) {
	switch n := n.(type) {
	case *ir.Call:
		*out = append(*out, n.Callee)
	case *ir.Seq:
		for _, stmt := range n.Stmts {
			collectCallees(stmt, out)
		}
	case *ir.If:
		for _, b := range n.Branches {
			collectCallees(b.Body, out)
		}
		if n.Else != nil {
			collectCallees(n.Else, out)
		}
	case *ir.Switch:
		for _, c := range n.Cases {
			collectCallees(c.Body, out)
		}
		if n.Default != nil {
			collectCallees(n.Default, out)
		}
	}
}

func parseLabel(t *testing.T, s string) int {
	t.Helper()
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		t.Fatalf("bad case label %q: %v", s, err)
	}
	return int(v)
}

// A handler symbol may recur in the one-byte table only as the two
// size requests of one slot: a single-size case carries both labels,
// and a single-size sibling inside an os-split slot repeats across the
// pair. Anything else means two opcodes resolved to one name.
func TestPlainNameUniqueness(t *testing.T) {
	bodies := plainCases(t)
	byCallee := make(map[string][]string)
	for lbl, body := range bodies {
		var callees []string
		collectCallees(body, &callees)
		seen := make(map[string]bool)
		for _, name := range callees {
			if name == "trigger_ud" {
				continue
			}
			if seen[name] {
				t.Errorf("case %s: handler %s called twice", lbl, name)
				continue
			}
			seen[name] = true
			byCallee[name] = append(byCallee[name], lbl)
		}
	}
	for name, labels := range byCallee {
		if len(labels) == 1 {
			continue
		}
		if len(labels) != 2 {
			t.Errorf("handler %s at cases %v, want at most one size pair", name, labels)
			continue
		}
		if parseLabel(t, labels[0])^parseLabel(t, labels[1]) != 0x100 {
			t.Errorf("handler %s at cases %s and %s, want the two size requests of one slot", name, labels[0], labels[1])
		}
	}
}

// The two 0F tables may share handler symbols, but only for the same
// opcode: a callee present in both must sit in the same case.
func TestExtendedNameUniqueness(t *testing.T) {
	t16, t32, err := Extended(x86.Table)
	if err != nil {
		t.Fatalf("Extended() error = %v", err)
	}
	collect := func(table string, n ir.Node) map[string]int {
		sw := n.(*ir.Switch)
		byCallee := make(map[string]int)
		for op, c := range sw.Cases {
			var callees []string
			collectCallees(c.Body, &callees)
			seen := make(map[string]bool)
			for _, name := range callees {
				if name == "trigger_ud" {
					continue
				}
				if seen[name] {
					t.Errorf("%s case %s: handler %s called twice", table, label(op), name)
					continue
				}
				seen[name] = true
				if prev, ok := byCallee[name]; ok {
					t.Errorf("%s: handler %s at cases %s and %s", table, name, label(prev), label(op))
					continue
				}
				byCallee[name] = op
			}
		}
		return byCallee
	}
	n16 := collect("16-bit table", t16)
	n32 := collect("32-bit table", t32)
	for name, op := range n16 {
		if other, ok := n32[name]; ok && other != op {
			t.Errorf("handler %s at case %s in one table, %s in the other", name, label(op), label(other))
		}
	}
}

func TestPlainCoverageError(t *testing.T) {
	var recs []x86.Encoding
	for _, rec := range x86.Table {
		if !rec.Extended() && rec.Byte() == 0xA8 {
			continue
		}
		recs = append(recs, rec)
	}
	_, err := Plain(recs)
	if !errors.Is(err, ErrCoverage) {
		t.Fatalf("Plain() error = %v, want ErrCoverage", err)
	}
	if !strings.Contains(err.Error(), "A8") {
		t.Errorf("Plain() error = %q, want the missing opcode in it", err)
	}
}

func TestSlotBodies(t *testing.T) {
	b16, b32, err := SlotBodies(x86.Table, 0x05)
	if err != nil {
		t.Fatalf("SlotBodies() error = %v", err)
	}
	if b16 == b32 {
		t.Error("size-split slot returned one body")
	}
	if got := render(t, b16); !strings.Contains(got, "instr16_05") {
		t.Errorf("16-bit body =\n%s", got)
	}

	b16, b32, err = SlotBodies(x86.Table, 0x00)
	if err != nil {
		t.Fatalf("SlotBodies() error = %v", err)
	}
	if b16 != b32 {
		t.Error("single-size slot returned two bodies")
	}

	b16, _, err = SlotBodies(x86.Table, 0x660F2A)
	if err != nil {
		t.Fatalf("SlotBodies() error = %v", err)
	}
	if got := render(t, b16); !strings.Contains(got, "instr_660F2A_mem") {
		t.Errorf("0F2A body misses the 66 branch:\n%s", got)
	}
}
