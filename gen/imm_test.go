// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"errors"
	"testing"

	"github.com/x86vm/dispatchgen/x86"
)

func Test_resolvedSize(t *testing.T) {
	tests := []struct {
		name      string
		rec       x86.Encoding
		requested int
		want      int
	}{
		{name: "os at 16", rec: x86.Encoding{Opcode: 0x05, Flags: x86.OS}, requested: size16, want: size16},
		{name: "os at 32", rec: x86.Encoding{Opcode: 0x05, Flags: x86.OS}, requested: size32, want: size32},
		{name: "even byte form", rec: x86.Encoding{Opcode: 0x04}, requested: size32, want: sizeNone},
		{name: "odd full width form", rec: x86.Encoding{Opcode: 0x71}, requested: size32, want: size32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvedSize(tt.rec, tt.requested); got != tt.want {
				t.Errorf("resolvedSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_planImms(t *testing.T) {
	tests := []struct {
		name          string
		rec           x86.Encoding
		size          int
		wantPrimary   immRead
		wantSecondary immRead
	}{
		{
			name: "none",
			rec:  x86.Encoding{Opcode: 0x90},
		},
		{
			name:        "imm8",
			rec:         x86.Encoding{Opcode: 0x04, Flags: x86.Imm8},
			wantPrimary: immByte,
		},
		{
			name:        "imm8 sign extended",
			rec:         x86.Encoding{Opcode: 0x70, Flags: x86.Imm8S},
			wantPrimary: immByteSigned,
		},
		{
			name:        "imm16",
			rec:         x86.Encoding{Opcode: 0xC2, Flags: x86.OS | x86.Imm16},
			size:        size32,
			wantPrimary: immWord,
		},
		{
			name:        "moffs",
			rec:         x86.Encoding{Opcode: 0xA0, Flags: x86.ImmAddr},
			wantPrimary: immMoffs,
		},
		{
			name:        "imm1632 at 16",
			rec:         x86.Encoding{Opcode: 0x05, Flags: x86.OS | x86.Imm1632},
			size:        size16,
			wantPrimary: immWord,
		},
		{
			name:        "imm1632 at 32",
			rec:         x86.Encoding{Opcode: 0x05, Flags: x86.OS | x86.Imm1632},
			size:        size32,
			wantPrimary: immDwordSigned,
		},
		{
			name:          "enter",
			rec:           x86.Encoding{Opcode: 0xC8, Flags: x86.OS | x86.Imm16 | x86.ExtraImm8},
			size:          size16,
			wantPrimary:   immWord,
			wantSecondary: immByte,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, secondary, err := planImms(tt.rec, tt.size)
			if err != nil {
				t.Fatalf("planImms() error = %v", err)
			}
			if primary != tt.wantPrimary || secondary != tt.wantSecondary {
				t.Errorf("planImms() = (%v, %v), want (%v, %v)",
					primary, secondary, tt.wantPrimary, tt.wantSecondary)
			}
		})
	}
}

func Test_planImms_errors(t *testing.T) {
	tests := []struct {
		name string
		rec  x86.Encoding
		size int
	}{
		{
			name: "imm1632 at byte size",
			rec:  x86.Encoding{Opcode: 0x04, Flags: x86.Imm1632},
			size: sizeNone,
		},
		{
			name: "two primaries",
			rec:  x86.Encoding{Opcode: 0x04, Flags: x86.Imm8 | x86.Imm16},
		},
		{
			name: "secondary without primary",
			rec:  x86.Encoding{Opcode: 0x04, Flags: x86.ExtraImm8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := planImms(tt.rec, tt.size); !errors.Is(err, ErrEncoding) {
				t.Errorf("planImms() error = %v, want ErrEncoding", err)
			}
		})
	}
}

func Test_immRead_expr(t *testing.T) {
	tests := []struct {
		r    immRead
		want string
	}{
		{r: immByte, want: "read_imm8()"},
		{r: immByteSigned, want: "read_imm8s()"},
		{r: immWord, want: "read_imm16()"},
		{r: immDwordSigned, want: "read_imm32s()"},
		{r: immMoffs, want: "read_moffs()"},
		{r: immNone, want: ""},
	}
	for _, tt := range tests {
		if got := tt.r.expr(); got != tt.want {
			t.Errorf("expr(%d) = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}
