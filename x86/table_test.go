// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86

import "testing"

func TestTableCoverage(t *testing.T) {
	var have [2][256]bool
	for _, rec := range Table {
		m := 0
		if rec.Extended() {
			m = 1
		}
		have[m][rec.Byte()] = true
	}
	names := []string{"one-byte", "0F"}
	for m := range have {
		for op, ok := range have[m] {
			if !ok {
				t.Errorf("%s map: opcode %02X has no encoding", names[m], op)
			}
		}
	}
}

func TestTableNoDuplicates(t *testing.T) {
	seen := make(map[[2]int]bool)
	for _, rec := range Table {
		key := [2]int{rec.Opcode, rec.FixedG}
		if seen[key] {
			t.Errorf("opcode %02X /%d: duplicate record", rec.Opcode, rec.FixedG)
		}
		seen[key] = true
	}
}

func TestTableGroupShape(t *testing.T) {
	for _, rec := range Table {
		if rec.Is(Group) {
			if rec.FixedG < 0 || rec.FixedG > 7 {
				t.Errorf("opcode %02X: extension value %d out of range", rec.Opcode, rec.FixedG)
			}
			continue
		}
		if rec.FixedG != 0 {
			t.Errorf("opcode %02X: extension value on a non-group record", rec.Opcode)
		}
	}
}

func TestTableSpotChecks(t *testing.T) {
	tests := []struct {
		name   string
		opcode int
		fixedG int
		want   Flags
	}{
		{name: "add eAX imm", opcode: 0x05, want: OS | Imm1632 | Nonfaulting},
		{name: "escape", opcode: 0x0F, want: OS | Custom},
		{name: "operand size prefix", opcode: 0x66, want: Prefix},
		{name: "group 1 add", opcode: 0x80, want: Group | Imm8 | Nonfaulting},
		{name: "lea", opcode: 0x8D, want: OS | Lea | Nonfaulting},
		{name: "pause", opcode: 0xF390, want: 0},
		{name: "ret", opcode: 0xC3, want: OS | BlockBoundary},
		{name: "enter", opcode: 0xC8, want: OS | Imm16 | ExtraImm8},
		{name: "mov from cr", opcode: 0x0F20, want: IgnoreMod},
		{name: "cvtsi2ss", opcode: 0xF30F2A, want: ModRM},
		{name: "imul", opcode: 0x0FAF, want: OS | ModRM | Nonfaulting},
		{name: "sidt", opcode: 0x0F01, fixedG: 1, want: Group | Custom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, rec := range Table {
				if rec.Opcode == tt.opcode && rec.FixedG == tt.fixedG {
					if rec.Flags != tt.want {
						t.Errorf("flags = %v, want %v", rec.Flags, tt.want)
					}
					return
				}
			}
			t.Errorf("opcode %02X /%d not present", tt.opcode, tt.fixedG)
		})
	}
}

func TestTablePrefixVariants(t *testing.T) {
	variants := make(map[int]int)
	for _, rec := range Table {
		if rec.Extended() && rec.Byte() == 0x10 {
			variants[rec.MandatoryPrefix()]++
		}
	}
	for _, p := range []int{0, Prefix66, PrefixF2, PrefixF3} {
		if variants[p] != 1 {
			t.Errorf("0F10 prefix %02X: %d records, want 1", p, variants[p])
		}
	}
}
