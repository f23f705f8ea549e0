// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rust

import (
	"bytes"
	"testing"

	"github.com/x86vm/dispatchgen/ir"
)

func TestFprint(t *testing.T) {
	tests := []struct {
		name string
		node ir.Node
		want string
	}{
		{
			name: "literal",
			node: ir.Literal("let modrm_byte = read_modrm_byte();"),
			want: "let modrm_byte = read_modrm_byte();\n",
		},
		{
			name: "call",
			node: &ir.Call{Callee: "instr_04", Args: []string{"read_imm8()"}},
			want: "instr_04(read_imm8());\n",
		},
		{
			name: "call without args",
			node: &ir.Call{Callee: "trigger_ud"},
			want: "trigger_ud();\n",
		},
		{
			name: "prefix fold",
			node: &ir.Call{Callee: "instr_66", Conv: ir.OrFlags},
			want: "prefixes |= instr_66();\n",
		},
		{
			name: "seq",
			node: &ir.Seq{Stmts: []ir.Node{
				ir.Literal("let addr = modrm_resolve(modrm_byte);"),
				&ir.Call{Callee: "instr_00_mem", Args: []string{"addr", "modrm_byte >> 3 & 7"}},
			}},
			want: "let addr = modrm_resolve(modrm_byte);\ninstr_00_mem(addr, modrm_byte >> 3 & 7);\n",
		},
		{
			name: "if else",
			node: &ir.If{
				Branches: []ir.Branch{
					{Cond: "modrm_byte < 0xC0", Body: &ir.Call{Callee: "mem"}},
				},
				Else: &ir.Call{Callee: "reg"},
			},
			want: "if modrm_byte < 0xC0 {\n    mem();\n} else {\n    reg();\n}\n",
		},
		{
			name: "if chain",
			node: &ir.If{
				Branches: []ir.Branch{
					{Cond: "prefixes & PREFIX_66 != 0", Body: &ir.Call{Callee: "a"}},
					{Cond: "prefixes & PREFIX_F2 != 0", Body: &ir.Call{Callee: "b"}},
				},
				Else: &ir.Call{Callee: "c"},
			},
			want: "if prefixes & PREFIX_66 != 0 {\n    a();\n} else if prefixes & PREFIX_F2 != 0 {\n    b();\n} else {\n    c();\n}\n",
		},
		{
			name: "match",
			node: &ir.Switch{
				Expr: "modrm_byte >> 3 & 7",
				Cases: []ir.Case{
					{Labels: []string{"0"}, Body: &ir.Call{Callee: "a"}},
					{Labels: []string{"1", "2"}, Body: &ir.Call{Callee: "b"}},
				},
				Default: &ir.Call{Callee: "trigger_ud"},
			},
			want: "match modrm_byte >> 3 & 7 {\n" +
				"    0 => {\n        a();\n    },\n" +
				"    1 | 2 => {\n        b();\n    },\n" +
				"    _ => {\n        trigger_ud();\n    },\n" +
				"}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Fprint(&buf, tt.node); err != nil {
				t.Fatalf("Fprint() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Fprint() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFprintUnknownNode(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, nil); err == nil {
		t.Error("Fprint(nil) succeeded, want error")
	}
}

func TestWriteTable(t *testing.T) {
	body := &ir.Switch{
		Expr: "opcode",
		Cases: []ir.Case{
			{Labels: []string{"0x00", "0x100"}, Body: &ir.Call{Callee: "instr_00"}},
		},
		Default: &ir.Call{Callee: "trigger_ud"},
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, "interpreter", body); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	want := `// Generated by dispatchgen; do not edit.

pub unsafe fn interpreter(opcode: i32) {
    match opcode {
        0x00 | 0x100 => {
            instr_00();
        },
        _ => {
            trigger_ud();
        },
    }
}
`
	if got := buf.String(); got != want {
		t.Errorf("WriteTable() =\n%s\nwant:\n%s", got, want)
	}
}
