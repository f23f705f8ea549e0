// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import "github.com/x86vm/dispatchgen/x86"

// immRead identifies one planned immediate fetch.
type immRead int

const (
	immNone immRead = iota
	immByte
	immByteSigned
	immWord
	immDwordSigned
	immMoffs
)

// expr returns the fetch expression the dispatch passes to a handler.
// Fetches advance the instruction stream, so argument order is
// significant.
func (r immRead) expr() string {
	switch r {
	case immByte:
		return "read_imm8()"
	case immByteSigned:
		return "read_imm8s()"
	case immWord:
		return "read_imm16()"
	case immDwordSigned:
		return "read_imm32s()"
	case immMoffs:
		return "read_moffs()"
	}
	return ""
}

// Operand sizes after resolution. sizeNone stands for the fixed byte
// width of forms that do not split.
const (
	sizeNone = 0
	size16   = 16
	size32   = 32
)

// resolvedSize maps a requested operand size onto one encoding. Forms
// marked for splitting take the request as is; so do full-width forms
// signalled by the low opcode bit. Everything else is byte sized.
func resolvedSize(rec x86.Encoding, requested int) int {
	if rec.Is(x86.OS) || rec.Byte()&1 == 1 {
		return requested
	}
	return sizeNone
}

// planImms returns the primary and secondary immediate fetches of an
// encoding at a resolved operand size.
func planImms(rec x86.Encoding, size int) (primary, secondary immRead, err error) {
	prim := rec.Flags & primaryImms
	if prim != 0 && prim&(prim-1) != 0 {
		return 0, 0, encodingErr(rec, "more than one primary immediate")
	}
	switch prim {
	case 0:
	case x86.Imm8:
		primary = immByte
	case x86.Imm8S:
		primary = immByteSigned
	case x86.Imm16:
		primary = immWord
	case x86.Imm32:
		primary = immDwordSigned
	case x86.ImmAddr:
		primary = immMoffs
	case x86.Imm1632:
		switch size {
		case size16:
			primary = immWord
		case size32:
			primary = immDwordSigned
		default:
			return 0, 0, encodingErr(rec, "size-dependent immediate at byte size")
		}
	}
	switch rec.Flags & extraImms {
	case 0:
	case x86.ExtraImm8:
		secondary = immByte
	case x86.ExtraImm16:
		secondary = immWord
	default:
		return 0, 0, encodingErr(rec, "more than one secondary immediate")
	}
	if secondary != immNone && primary == immNone {
		return 0, 0, encodingErr(rec, "secondary immediate without a primary")
	}
	return primary, secondary, nil
}
