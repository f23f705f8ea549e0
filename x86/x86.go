// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x86 describes the one-byte and 0F-escaped instruction
// encodings that the generator compiles into dispatch tables.
package x86

// Flags describe how an instruction form is encoded and how its
// generated call site behaves.
type Flags uint32

const (
	// OS marks an instruction that exists in a 16-bit and a 32-bit
	// operand-size variant with separate handlers.
	OS Flags = 1 << iota

	// ModRM marks a modrm byte whose register field selects an
	// operand register.
	ModRM

	// IgnoreMod marks a modrm byte whose mode bits are irrelevant;
	// both operands are always registers.
	IgnoreMod

	// Lea marks the load-effective-address form. The memory operand
	// is an address computation only, never a dereference, and the
	// register form is invalid.
	Lea

	// Group marks a member of an opcode-extension group. The modrm
	// register field selects the sibling, not an operand, and FixedG
	// holds the member's extension value.
	Group

	// Immediate operands, read after the opcode and modrm bytes.
	// At most one may be set per encoding.
	Imm8
	Imm8S
	Imm16
	Imm1632 // 16 or 32 bits depending on the resolved operand size
	Imm32
	ImmAddr // memory offset, address width resolved at runtime

	// Secondary immediates, read after the primary one.
	ExtraImm8
	ExtraImm16

	// Prefix marks a prefix byte. Its handler returns the prefix's
	// flag bits, which the dispatch ORs into the running prefix word.
	Prefix

	// Custom switches the calling convention: a group member takes
	// the raw modrm byte, any other form consumes the byte stream
	// itself and takes no arguments.
	Custom

	// Nonfaulting marks a handler that cannot raise a fault, so its
	// call site is flagged for the block compiler.
	Nonfaulting

	// BlockBoundary marks an instruction that ends a basic block.
	BlockBoundary
)

// Prefix bytes that may appear in the upper bits of an Encoding's
// opcode, and the two-byte opcode escape.
const (
	Prefix66 = 0x66 // operand-size override, mandatory prefix of many SSE forms
	PrefixF2 = 0xF2 // repne, mandatory prefix of scalar double SSE forms
	PrefixF3 = 0xF3 // rep, mandatory prefix of scalar single SSE forms
	Escape   = 0x0F // two-byte opcode escape
)

// Encoding is one instruction form. The low byte of Opcode is the
// primary opcode; the upper bytes hold the prefix chain: the 0F escape
// for the extended map and an optional mandatory prefix byte, for
// example 0x0F2A, 0x660F2A or 0xF390.
type Encoding struct {
	Opcode int
	Flags  Flags
	FixedG int // opcode-extension value 0-7, meaningful only with Group
}

// Is reports whether every flag in f is set.
func (e Encoding) Is(f Flags) bool { return e.Flags&f == f }

// Byte returns the primary opcode byte.
func (e Encoding) Byte() int { return e.Opcode & 0xFF }

// Extended reports whether the form lives on the 0F map.
func (e Encoding) Extended() bool { return (e.Opcode>>8)&0xFF == Escape }

// MandatoryPrefix returns the form's mandatory prefix byte (0x66, 0xF2
// or 0xF3), or 0 for an unprefixed form.
func (e Encoding) MandatoryPrefix() int {
	p := e.Opcode >> 8
	if p&0xFF == Escape {
		p >>= 8
	}
	return p & 0xFF
}

// UsesModRM reports whether the form consumes a modrm byte.
func (e Encoding) UsesModRM() bool {
	return e.Flags&(ModRM|IgnoreMod|Lea|Group) != 0
}
