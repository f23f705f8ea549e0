// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"testing"
)

func TestEncodingByte(t *testing.T) {
	tests := []struct {
		opcode int
		want   int
	}{
		{opcode: 0x05, want: 0x05},
		{opcode: 0xF390, want: 0x90},
		{opcode: 0x0FAF, want: 0xAF},
		{opcode: 0x660F2A, want: 0x2A},
		{opcode: 0xF30F10, want: 0x10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X", tt.opcode), func(t *testing.T) {
			e := Encoding{Opcode: tt.opcode}
			if got := e.Byte(); got != tt.want {
				t.Errorf("Byte() = %02X, want %02X", got, tt.want)
			}
		})
	}
}

func TestEncodingExtended(t *testing.T) {
	tests := []struct {
		opcode int
		want   bool
	}{
		{opcode: 0x05, want: false},
		{opcode: 0xF390, want: false},
		{opcode: 0x0FAF, want: true},
		{opcode: 0x660F2A, want: true},
		{opcode: 0xF30F10, want: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X", tt.opcode), func(t *testing.T) {
			e := Encoding{Opcode: tt.opcode}
			if got := e.Extended(); got != tt.want {
				t.Errorf("Extended() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodingMandatoryPrefix(t *testing.T) {
	tests := []struct {
		opcode int
		want   int
	}{
		{opcode: 0x05, want: 0},
		{opcode: 0x0FAF, want: 0},
		{opcode: 0xF390, want: 0xF3},
		{opcode: 0x660F2A, want: 0x66},
		{opcode: 0xF20F10, want: 0xF2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X", tt.opcode), func(t *testing.T) {
			e := Encoding{Opcode: tt.opcode}
			if got := e.MandatoryPrefix(); got != tt.want {
				t.Errorf("MandatoryPrefix() = %02X, want %02X", got, tt.want)
			}
		})
	}
}

func TestEncodingUsesModRM(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  bool
	}{
		{name: "modrm", flags: ModRM, want: true},
		{name: "group", flags: Group, want: true},
		{name: "ignoremod", flags: IgnoreMod, want: true},
		{name: "lea", flags: Lea, want: true},
		{name: "bare", flags: Imm8, want: false},
		{name: "prefix", flags: Prefix, want: false},
		{name: "custom", flags: Custom, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Encoding{Flags: tt.flags}
			if got := e.UsesModRM(); got != tt.want {
				t.Errorf("UsesModRM() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodingIs(t *testing.T) {
	e := Encoding{Flags: OS | ModRM | Nonfaulting}
	if !e.Is(OS) || !e.Is(ModRM | Nonfaulting) {
		t.Errorf("Is() missed flags set on %v", e.Flags)
	}
	if e.Is(Group) || e.Is(ModRM | Imm8) {
		t.Errorf("Is() reported flags not set on %v", e.Flags)
	}
}
