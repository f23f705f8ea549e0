// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x86

// Table is the complete encoding dataset. Every slot of the one-byte
// map and of the 0F map carries at least one record; reserved forms
// keep records whose handlers raise the invalid-opcode fault at
// runtime, so the generated tables stay total.
var Table = []Encoding{
	// 00-05: add
	{Opcode: 0x00, Flags: ModRM | Nonfaulting},
	{Opcode: 0x01, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x02, Flags: ModRM | Nonfaulting},
	{Opcode: 0x03, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x04, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x05, Flags: OS | Imm1632 | Nonfaulting},
	// 06-07: push/pop es
	{Opcode: 0x06, Flags: OS},
	{Opcode: 0x07, Flags: OS},
	// 08-0D: or
	{Opcode: 0x08, Flags: ModRM | Nonfaulting},
	{Opcode: 0x09, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0A, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0B, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0C, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x0D, Flags: OS | Imm1632 | Nonfaulting},
	// 0E: push cs, 0F: two-byte escape
	{Opcode: 0x0E, Flags: OS},
	{Opcode: 0x0F, Flags: OS | Custom},
	// 10-15: adc
	{Opcode: 0x10, Flags: ModRM | Nonfaulting},
	{Opcode: 0x11, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x12, Flags: ModRM | Nonfaulting},
	{Opcode: 0x13, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x14, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x15, Flags: OS | Imm1632 | Nonfaulting},
	// 16-17: push/pop ss
	{Opcode: 0x16, Flags: OS},
	{Opcode: 0x17, Flags: OS},
	// 18-1D: sbb
	{Opcode: 0x18, Flags: ModRM | Nonfaulting},
	{Opcode: 0x19, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x1A, Flags: ModRM | Nonfaulting},
	{Opcode: 0x1B, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x1C, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x1D, Flags: OS | Imm1632 | Nonfaulting},
	// 1E-1F: push/pop ds
	{Opcode: 0x1E, Flags: OS},
	{Opcode: 0x1F, Flags: OS},
	// 20-25: and, 26: es override, 27: daa
	{Opcode: 0x20, Flags: ModRM | Nonfaulting},
	{Opcode: 0x21, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x22, Flags: ModRM | Nonfaulting},
	{Opcode: 0x23, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x24, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x25, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0x26, Flags: Prefix},
	{Opcode: 0x27, Flags: Nonfaulting},
	// 28-2D: sub, 2E: cs override, 2F: das
	{Opcode: 0x28, Flags: ModRM | Nonfaulting},
	{Opcode: 0x29, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x2A, Flags: ModRM | Nonfaulting},
	{Opcode: 0x2B, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x2C, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x2D, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0x2E, Flags: Prefix},
	{Opcode: 0x2F, Flags: Nonfaulting},
	// 30-35: xor, 36: ss override, 37: aaa
	{Opcode: 0x30, Flags: ModRM | Nonfaulting},
	{Opcode: 0x31, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x32, Flags: ModRM | Nonfaulting},
	{Opcode: 0x33, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x34, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x35, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0x36, Flags: Prefix},
	{Opcode: 0x37, Flags: Nonfaulting},
	// 38-3D: cmp, 3E: ds override, 3F: aas
	{Opcode: 0x38, Flags: ModRM | Nonfaulting},
	{Opcode: 0x39, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x3A, Flags: ModRM | Nonfaulting},
	{Opcode: 0x3B, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x3C, Flags: Imm8 | Nonfaulting},
	{Opcode: 0x3D, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0x3E, Flags: Prefix},
	{Opcode: 0x3F, Flags: Nonfaulting},
	// 40-47: inc r16/32
	{Opcode: 0x40, Flags: OS | Nonfaulting},
	{Opcode: 0x41, Flags: OS | Nonfaulting},
	{Opcode: 0x42, Flags: OS | Nonfaulting},
	{Opcode: 0x43, Flags: OS | Nonfaulting},
	{Opcode: 0x44, Flags: OS | Nonfaulting},
	{Opcode: 0x45, Flags: OS | Nonfaulting},
	{Opcode: 0x46, Flags: OS | Nonfaulting},
	{Opcode: 0x47, Flags: OS | Nonfaulting},
	// 48-4F: dec r16/32
	{Opcode: 0x48, Flags: OS | Nonfaulting},
	{Opcode: 0x49, Flags: OS | Nonfaulting},
	{Opcode: 0x4A, Flags: OS | Nonfaulting},
	{Opcode: 0x4B, Flags: OS | Nonfaulting},
	{Opcode: 0x4C, Flags: OS | Nonfaulting},
	{Opcode: 0x4D, Flags: OS | Nonfaulting},
	{Opcode: 0x4E, Flags: OS | Nonfaulting},
	{Opcode: 0x4F, Flags: OS | Nonfaulting},
	// 50-57: push r16/32
	{Opcode: 0x50, Flags: OS},
	{Opcode: 0x51, Flags: OS},
	{Opcode: 0x52, Flags: OS},
	{Opcode: 0x53, Flags: OS},
	{Opcode: 0x54, Flags: OS},
	{Opcode: 0x55, Flags: OS},
	{Opcode: 0x56, Flags: OS},
	{Opcode: 0x57, Flags: OS},
	// 58-5F: pop r16/32
	{Opcode: 0x58, Flags: OS},
	{Opcode: 0x59, Flags: OS},
	{Opcode: 0x5A, Flags: OS},
	{Opcode: 0x5B, Flags: OS},
	{Opcode: 0x5C, Flags: OS},
	{Opcode: 0x5D, Flags: OS},
	{Opcode: 0x5E, Flags: OS},
	{Opcode: 0x5F, Flags: OS},
	// 60-63: pusha, popa, bound, arpl
	{Opcode: 0x60, Flags: OS},
	{Opcode: 0x61, Flags: OS},
	{Opcode: 0x62, Flags: OS | ModRM},
	{Opcode: 0x63, Flags: ModRM},
	// 64-67: fs/gs overrides, operand-size, address-size
	{Opcode: 0x64, Flags: Prefix},
	{Opcode: 0x65, Flags: Prefix},
	{Opcode: 0x66, Flags: Prefix},
	{Opcode: 0x67, Flags: Prefix},
	// 68-6B: push imm, imul
	{Opcode: 0x68, Flags: OS | Imm1632},
	{Opcode: 0x69, Flags: OS | ModRM | Imm1632 | Nonfaulting},
	{Opcode: 0x6A, Flags: OS | Imm8S},
	{Opcode: 0x6B, Flags: OS | ModRM | Imm8S | Nonfaulting},
	// 6C-6F: ins/outs
	{Opcode: 0x6C},
	{Opcode: 0x6D, Flags: OS},
	{Opcode: 0x6E},
	{Opcode: 0x6F, Flags: OS},
	// 70-7F: jcc rel8
	{Opcode: 0x70, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x71, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x72, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x73, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x74, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x75, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x76, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x77, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x78, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x79, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x7A, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x7B, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x7C, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x7D, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x7E, Flags: Imm8S | BlockBoundary},
	{Opcode: 0x7F, Flags: Imm8S | BlockBoundary},
	// 80-83: alu groups with immediates
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 0},
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 1},
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 2},
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 3},
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 4},
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 5},
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 6},
	{Opcode: 0x80, Flags: Group | Imm8 | Nonfaulting, FixedG: 7},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 0},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 1},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 2},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 3},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 4},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 5},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 6},
	{Opcode: 0x81, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 7},
	// 82 is an alias of 80 outside 64-bit mode
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 0},
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 1},
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 2},
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 3},
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 4},
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 5},
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 6},
	{Opcode: 0x82, Flags: Group | Imm8 | Nonfaulting, FixedG: 7},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 0},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 1},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 2},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 3},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 4},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 5},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 6},
	{Opcode: 0x83, Flags: OS | Group | Imm8S | Nonfaulting, FixedG: 7},
	// 84-87: test, xchg
	{Opcode: 0x84, Flags: ModRM | Nonfaulting},
	{Opcode: 0x85, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x86, Flags: ModRM | Nonfaulting},
	{Opcode: 0x87, Flags: OS | ModRM | Nonfaulting},
	// 88-8B: mov
	{Opcode: 0x88, Flags: ModRM | Nonfaulting},
	{Opcode: 0x89, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x8A, Flags: ModRM | Nonfaulting},
	{Opcode: 0x8B, Flags: OS | ModRM | Nonfaulting},
	// 8C: mov from sreg, 8D: lea, 8E: mov to sreg, 8F: pop r/m
	{Opcode: 0x8C, Flags: OS | ModRM},
	{Opcode: 0x8D, Flags: OS | Lea | Nonfaulting},
	{Opcode: 0x8E, Flags: ModRM | BlockBoundary},
	{Opcode: 0x8F, Flags: OS | Group, FixedG: 0},
	// 90: nop, with the rep-prefixed pause form
	{Opcode: 0x90, Flags: OS},
	{Opcode: 0xF390},
	// 91-97: xchg r16/32, eax
	{Opcode: 0x91, Flags: OS | Nonfaulting},
	{Opcode: 0x92, Flags: OS | Nonfaulting},
	{Opcode: 0x93, Flags: OS | Nonfaulting},
	{Opcode: 0x94, Flags: OS | Nonfaulting},
	{Opcode: 0x95, Flags: OS | Nonfaulting},
	{Opcode: 0x96, Flags: OS | Nonfaulting},
	{Opcode: 0x97, Flags: OS | Nonfaulting},
	// 98-9F: cbw, cwd, callf, wait, pushf, popf, sahf, lahf
	{Opcode: 0x98, Flags: OS | Nonfaulting},
	{Opcode: 0x99, Flags: OS | Nonfaulting},
	{Opcode: 0x9A, Flags: OS | Custom | BlockBoundary},
	{Opcode: 0x9B},
	{Opcode: 0x9C, Flags: OS},
	{Opcode: 0x9D, Flags: OS | BlockBoundary},
	{Opcode: 0x9E, Flags: Nonfaulting},
	{Opcode: 0x9F, Flags: Nonfaulting},
	// A0-A3: mov with direct offset
	{Opcode: 0xA0, Flags: ImmAddr},
	{Opcode: 0xA1, Flags: OS | ImmAddr},
	{Opcode: 0xA2, Flags: ImmAddr},
	{Opcode: 0xA3, Flags: OS | ImmAddr},
	// A4-A7: movs, cmps
	{Opcode: 0xA4},
	{Opcode: 0xA5, Flags: OS},
	{Opcode: 0xA6},
	{Opcode: 0xA7, Flags: OS},
	// A8-A9: test with immediate
	{Opcode: 0xA8, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xA9, Flags: OS | Imm1632 | Nonfaulting},
	// AA-AF: stos, lods, scas
	{Opcode: 0xAA},
	{Opcode: 0xAB, Flags: OS},
	{Opcode: 0xAC},
	{Opcode: 0xAD, Flags: OS},
	{Opcode: 0xAE},
	{Opcode: 0xAF, Flags: OS},
	// B0-B7: mov r8, imm8
	{Opcode: 0xB0, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xB1, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xB2, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xB3, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xB4, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xB5, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xB6, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xB7, Flags: Imm8 | Nonfaulting},
	// B8-BF: mov r16/32, imm
	{Opcode: 0xB8, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0xB9, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0xBA, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0xBB, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0xBC, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0xBD, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0xBE, Flags: OS | Imm1632 | Nonfaulting},
	{Opcode: 0xBF, Flags: OS | Imm1632 | Nonfaulting},
	// C0-C1: shift groups with imm8
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 0},
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 1},
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 2},
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 3},
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 4},
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 5},
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 6},
	{Opcode: 0xC0, Flags: Group | Imm8 | Nonfaulting, FixedG: 7},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 0},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 1},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 2},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 3},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 4},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 5},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 6},
	{Opcode: 0xC1, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 7},
	// C2-C3: ret
	{Opcode: 0xC2, Flags: OS | Imm16 | BlockBoundary},
	{Opcode: 0xC3, Flags: OS | BlockBoundary},
	// C4-C5: les, lds
	{Opcode: 0xC4, Flags: OS | ModRM},
	{Opcode: 0xC5, Flags: OS | ModRM},
	// C6-C7: mov r/m, imm
	{Opcode: 0xC6, Flags: Group | Imm8 | Nonfaulting, FixedG: 0},
	{Opcode: 0xC7, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 0},
	// C8-C9: enter, leave
	{Opcode: 0xC8, Flags: OS | Imm16 | ExtraImm8},
	{Opcode: 0xC9, Flags: OS},
	// CA-CF: retf, int3, int, into, iret
	{Opcode: 0xCA, Flags: OS | Imm16 | BlockBoundary},
	{Opcode: 0xCB, Flags: OS | BlockBoundary},
	{Opcode: 0xCC, Flags: BlockBoundary},
	{Opcode: 0xCD, Flags: Imm8 | BlockBoundary},
	{Opcode: 0xCE, Flags: BlockBoundary},
	{Opcode: 0xCF, Flags: OS | BlockBoundary},
	// D0-D3: shift groups by 1 and by cl
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 0},
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 1},
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 2},
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 3},
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 4},
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 5},
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 6},
	{Opcode: 0xD0, Flags: Group | Nonfaulting, FixedG: 7},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 0},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 1},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 2},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 3},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 4},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 5},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 6},
	{Opcode: 0xD1, Flags: OS | Group | Nonfaulting, FixedG: 7},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 0},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 1},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 2},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 3},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 4},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 5},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 6},
	{Opcode: 0xD2, Flags: Group | Nonfaulting, FixedG: 7},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 0},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 1},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 2},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 3},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 4},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 5},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 6},
	{Opcode: 0xD3, Flags: OS | Group | Nonfaulting, FixedG: 7},
	// D4-D7: aam, aad, salc, xlat
	{Opcode: 0xD4, Flags: Imm8},
	{Opcode: 0xD5, Flags: Imm8 | Nonfaulting},
	{Opcode: 0xD6, Flags: Nonfaulting},
	{Opcode: 0xD7},
	// D8-DF: x87 escapes, reg field selects the operation
	{Opcode: 0xD8, Flags: Group, FixedG: 0},
	{Opcode: 0xD8, Flags: Group, FixedG: 1},
	{Opcode: 0xD8, Flags: Group, FixedG: 2},
	{Opcode: 0xD8, Flags: Group, FixedG: 3},
	{Opcode: 0xD8, Flags: Group, FixedG: 4},
	{Opcode: 0xD8, Flags: Group, FixedG: 5},
	{Opcode: 0xD8, Flags: Group, FixedG: 6},
	{Opcode: 0xD8, Flags: Group, FixedG: 7},
	{Opcode: 0xD9, Flags: Group, FixedG: 0},
	{Opcode: 0xD9, Flags: Group, FixedG: 1},
	{Opcode: 0xD9, Flags: Group, FixedG: 2},
	{Opcode: 0xD9, Flags: Group, FixedG: 3},
	{Opcode: 0xD9, Flags: Group, FixedG: 4},
	{Opcode: 0xD9, Flags: Group, FixedG: 5},
	{Opcode: 0xD9, Flags: Group, FixedG: 6},
	{Opcode: 0xD9, Flags: Group, FixedG: 7},
	{Opcode: 0xDA, Flags: Group, FixedG: 0},
	{Opcode: 0xDA, Flags: Group, FixedG: 1},
	{Opcode: 0xDA, Flags: Group, FixedG: 2},
	{Opcode: 0xDA, Flags: Group, FixedG: 3},
	{Opcode: 0xDA, Flags: Group, FixedG: 4},
	{Opcode: 0xDA, Flags: Group, FixedG: 5},
	{Opcode: 0xDA, Flags: Group, FixedG: 6},
	{Opcode: 0xDA, Flags: Group, FixedG: 7},
	{Opcode: 0xDB, Flags: Group, FixedG: 0},
	{Opcode: 0xDB, Flags: Group, FixedG: 1},
	{Opcode: 0xDB, Flags: Group, FixedG: 2},
	{Opcode: 0xDB, Flags: Group, FixedG: 3},
	{Opcode: 0xDB, Flags: Group, FixedG: 4},
	{Opcode: 0xDB, Flags: Group, FixedG: 5},
	{Opcode: 0xDB, Flags: Group, FixedG: 6},
	{Opcode: 0xDB, Flags: Group, FixedG: 7},
	{Opcode: 0xDC, Flags: Group, FixedG: 0},
	{Opcode: 0xDC, Flags: Group, FixedG: 1},
	{Opcode: 0xDC, Flags: Group, FixedG: 2},
	{Opcode: 0xDC, Flags: Group, FixedG: 3},
	{Opcode: 0xDC, Flags: Group, FixedG: 4},
	{Opcode: 0xDC, Flags: Group, FixedG: 5},
	{Opcode: 0xDC, Flags: Group, FixedG: 6},
	{Opcode: 0xDC, Flags: Group, FixedG: 7},
	{Opcode: 0xDD, Flags: Group, FixedG: 0},
	{Opcode: 0xDD, Flags: Group, FixedG: 1},
	{Opcode: 0xDD, Flags: Group, FixedG: 2},
	{Opcode: 0xDD, Flags: Group, FixedG: 3},
	{Opcode: 0xDD, Flags: Group, FixedG: 4},
	{Opcode: 0xDD, Flags: Group, FixedG: 5},
	{Opcode: 0xDD, Flags: Group, FixedG: 6},
	{Opcode: 0xDD, Flags: Group, FixedG: 7},
	{Opcode: 0xDE, Flags: Group, FixedG: 0},
	{Opcode: 0xDE, Flags: Group, FixedG: 1},
	{Opcode: 0xDE, Flags: Group, FixedG: 2},
	{Opcode: 0xDE, Flags: Group, FixedG: 3},
	{Opcode: 0xDE, Flags: Group, FixedG: 4},
	{Opcode: 0xDE, Flags: Group, FixedG: 5},
	{Opcode: 0xDE, Flags: Group, FixedG: 6},
	{Opcode: 0xDE, Flags: Group, FixedG: 7},
	{Opcode: 0xDF, Flags: Group, FixedG: 0},
	{Opcode: 0xDF, Flags: Group, FixedG: 1},
	{Opcode: 0xDF, Flags: Group, FixedG: 2},
	{Opcode: 0xDF, Flags: Group, FixedG: 3},
	{Opcode: 0xDF, Flags: Group, FixedG: 4},
	{Opcode: 0xDF, Flags: Group, FixedG: 5},
	{Opcode: 0xDF, Flags: Group, FixedG: 6},
	{Opcode: 0xDF, Flags: Group, FixedG: 7},
	// E0-E3: loopnz, loopz, loop, jcxz
	{Opcode: 0xE0, Flags: Imm8S | BlockBoundary},
	{Opcode: 0xE1, Flags: Imm8S | BlockBoundary},
	{Opcode: 0xE2, Flags: Imm8S | BlockBoundary},
	{Opcode: 0xE3, Flags: Imm8S | BlockBoundary},
	// E4-E7: in/out with imm8 port
	{Opcode: 0xE4, Flags: Imm8},
	{Opcode: 0xE5, Flags: OS | Imm8},
	{Opcode: 0xE6, Flags: Imm8},
	{Opcode: 0xE7, Flags: OS | Imm8},
	// E8-EB: call rel, jmp rel, jmpf, jmp rel8
	{Opcode: 0xE8, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0xE9, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0xEA, Flags: OS | Custom | BlockBoundary},
	{Opcode: 0xEB, Flags: Imm8S | BlockBoundary},
	// EC-EF: in/out with dx port
	{Opcode: 0xEC},
	{Opcode: 0xED, Flags: OS},
	{Opcode: 0xEE},
	{Opcode: 0xEF, Flags: OS},
	// F0-F3: lock, int1, repne, rep
	{Opcode: 0xF0, Flags: Prefix},
	{Opcode: 0xF1, Flags: BlockBoundary},
	{Opcode: 0xF2, Flags: Prefix},
	{Opcode: 0xF3, Flags: Prefix},
	// F4-F5: hlt, cmc
	{Opcode: 0xF4, Flags: BlockBoundary},
	{Opcode: 0xF5, Flags: Nonfaulting},
	// F6-F7: unary groups; div and idiv can fault on any operand
	{Opcode: 0xF6, Flags: Group | Imm8 | Nonfaulting, FixedG: 0},
	{Opcode: 0xF6, Flags: Group | Imm8 | Nonfaulting, FixedG: 1},
	{Opcode: 0xF6, Flags: Group | Nonfaulting, FixedG: 2},
	{Opcode: 0xF6, Flags: Group | Nonfaulting, FixedG: 3},
	{Opcode: 0xF6, Flags: Group | Nonfaulting, FixedG: 4},
	{Opcode: 0xF6, Flags: Group | Nonfaulting, FixedG: 5},
	{Opcode: 0xF6, Flags: Group, FixedG: 6},
	{Opcode: 0xF6, Flags: Group, FixedG: 7},
	{Opcode: 0xF7, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 0},
	{Opcode: 0xF7, Flags: OS | Group | Imm1632 | Nonfaulting, FixedG: 1},
	{Opcode: 0xF7, Flags: OS | Group | Nonfaulting, FixedG: 2},
	{Opcode: 0xF7, Flags: OS | Group | Nonfaulting, FixedG: 3},
	{Opcode: 0xF7, Flags: OS | Group | Nonfaulting, FixedG: 4},
	{Opcode: 0xF7, Flags: OS | Group | Nonfaulting, FixedG: 5},
	{Opcode: 0xF7, Flags: OS | Group, FixedG: 6},
	{Opcode: 0xF7, Flags: OS | Group, FixedG: 7},
	// F8-FD: clc, stc, cli, sti, cld, std
	{Opcode: 0xF8, Flags: Nonfaulting},
	{Opcode: 0xF9, Flags: Nonfaulting},
	{Opcode: 0xFA},
	{Opcode: 0xFB, Flags: BlockBoundary},
	{Opcode: 0xFC, Flags: Nonfaulting},
	{Opcode: 0xFD, Flags: Nonfaulting},
	// FE-FF: inc/dec and indirect branch groups
	{Opcode: 0xFE, Flags: Group | Nonfaulting, FixedG: 0},
	{Opcode: 0xFE, Flags: Group | Nonfaulting, FixedG: 1},
	{Opcode: 0xFF, Flags: OS | Group | Nonfaulting, FixedG: 0},
	{Opcode: 0xFF, Flags: OS | Group | Nonfaulting, FixedG: 1},
	{Opcode: 0xFF, Flags: OS | Group | BlockBoundary, FixedG: 2},
	{Opcode: 0xFF, Flags: OS | Group | BlockBoundary, FixedG: 3},
	{Opcode: 0xFF, Flags: OS | Group | BlockBoundary, FixedG: 4},
	{Opcode: 0xFF, Flags: OS | Group | BlockBoundary, FixedG: 5},
	{Opcode: 0xFF, Flags: OS | Group, FixedG: 6},

	// 0F00-0F01: descriptor-table groups
	{Opcode: 0x0F00, Flags: Group, FixedG: 0},
	{Opcode: 0x0F00, Flags: Group, FixedG: 1},
	{Opcode: 0x0F00, Flags: Group, FixedG: 2},
	{Opcode: 0x0F00, Flags: Group, FixedG: 3},
	{Opcode: 0x0F00, Flags: Group, FixedG: 4},
	{Opcode: 0x0F00, Flags: Group, FixedG: 5},
	{Opcode: 0x0F01, Flags: Group | Custom, FixedG: 0},
	{Opcode: 0x0F01, Flags: Group | Custom, FixedG: 1},
	{Opcode: 0x0F01, Flags: Group | Custom, FixedG: 2},
	{Opcode: 0x0F01, Flags: Group | Custom, FixedG: 3},
	{Opcode: 0x0F01, Flags: Group, FixedG: 4},
	{Opcode: 0x0F01, Flags: Group, FixedG: 6},
	{Opcode: 0x0F01, Flags: Group | Custom, FixedG: 7},
	// 0F02-0F03: lar, lsl
	{Opcode: 0x0F02, Flags: OS | ModRM},
	{Opcode: 0x0F03, Flags: OS | ModRM},
	// 0F04-0F0F: mostly reserved
	{Opcode: 0x0F04},
	{Opcode: 0x0F05},
	{Opcode: 0x0F06},
	{Opcode: 0x0F07},
	{Opcode: 0x0F08},
	{Opcode: 0x0F09},
	{Opcode: 0x0F0A},
	{Opcode: 0x0F0B, Flags: BlockBoundary},
	{Opcode: 0x0F0C},
	{Opcode: 0x0F0D, Flags: ModRM},
	{Opcode: 0x0F0E},
	{Opcode: 0x0F0F},
	// 0F10-0F17: sse moves
	{Opcode: 0x0F10, Flags: ModRM},
	{Opcode: 0x660F10, Flags: ModRM},
	{Opcode: 0xF20F10, Flags: ModRM},
	{Opcode: 0xF30F10, Flags: ModRM},
	{Opcode: 0x0F11, Flags: ModRM},
	{Opcode: 0x660F11, Flags: ModRM},
	{Opcode: 0xF20F11, Flags: ModRM},
	{Opcode: 0xF30F11, Flags: ModRM},
	{Opcode: 0x0F12, Flags: ModRM},
	{Opcode: 0x660F12, Flags: ModRM},
	{Opcode: 0x0F13, Flags: ModRM},
	{Opcode: 0x660F13, Flags: ModRM},
	{Opcode: 0x0F14, Flags: ModRM},
	{Opcode: 0x660F14, Flags: ModRM},
	{Opcode: 0x0F15, Flags: ModRM},
	{Opcode: 0x660F15, Flags: ModRM},
	{Opcode: 0x0F16, Flags: ModRM},
	{Opcode: 0x660F16, Flags: ModRM},
	{Opcode: 0x0F17, Flags: ModRM},
	{Opcode: 0x660F17, Flags: ModRM},
	// 0F18-0F1F: prefetch hints and long nops
	{Opcode: 0x0F18, Flags: ModRM},
	{Opcode: 0x0F19, Flags: ModRM},
	{Opcode: 0x0F1A, Flags: ModRM},
	{Opcode: 0x0F1B, Flags: ModRM},
	{Opcode: 0x0F1C, Flags: ModRM},
	{Opcode: 0x0F1D, Flags: ModRM},
	{Opcode: 0x0F1E, Flags: ModRM},
	{Opcode: 0x0F1F, Flags: ModRM},
	// 0F20-0F23: control and debug register moves
	{Opcode: 0x0F20, Flags: IgnoreMod},
	{Opcode: 0x0F21, Flags: IgnoreMod},
	{Opcode: 0x0F22, Flags: IgnoreMod | BlockBoundary},
	{Opcode: 0x0F23, Flags: IgnoreMod | BlockBoundary},
	// 0F24-0F27: removed test-register moves
	{Opcode: 0x0F24},
	{Opcode: 0x0F25},
	{Opcode: 0x0F26},
	{Opcode: 0x0F27},
	// 0F28-0F2F: sse moves and conversions
	{Opcode: 0x0F28, Flags: ModRM},
	{Opcode: 0x660F28, Flags: ModRM},
	{Opcode: 0x0F29, Flags: ModRM},
	{Opcode: 0x660F29, Flags: ModRM},
	{Opcode: 0x0F2A, Flags: ModRM},
	{Opcode: 0x660F2A, Flags: ModRM},
	{Opcode: 0xF20F2A, Flags: ModRM},
	{Opcode: 0xF30F2A, Flags: ModRM},
	{Opcode: 0x0F2B, Flags: ModRM},
	{Opcode: 0x660F2B, Flags: ModRM},
	{Opcode: 0x0F2C, Flags: ModRM},
	{Opcode: 0x660F2C, Flags: ModRM},
	{Opcode: 0xF20F2C, Flags: ModRM},
	{Opcode: 0xF30F2C, Flags: ModRM},
	{Opcode: 0x0F2D, Flags: ModRM},
	{Opcode: 0x660F2D, Flags: ModRM},
	{Opcode: 0xF20F2D, Flags: ModRM},
	{Opcode: 0xF30F2D, Flags: ModRM},
	{Opcode: 0x0F2E, Flags: ModRM},
	{Opcode: 0x660F2E, Flags: ModRM},
	{Opcode: 0x0F2F, Flags: ModRM},
	{Opcode: 0x660F2F, Flags: ModRM},
	// 0F30-0F37: msr access, rdtsc, sysenter
	{Opcode: 0x0F30},
	{Opcode: 0x0F31},
	{Opcode: 0x0F32},
	{Opcode: 0x0F33},
	{Opcode: 0x0F34, Flags: BlockBoundary},
	{Opcode: 0x0F35, Flags: BlockBoundary},
	{Opcode: 0x0F36},
	{Opcode: 0x0F37},
	// 0F38-0F3F: three-byte escapes and reserved space
	{Opcode: 0x0F38, Flags: Custom},
	{Opcode: 0x0F39},
	{Opcode: 0x0F3A, Flags: Custom},
	{Opcode: 0x0F3B},
	{Opcode: 0x0F3C},
	{Opcode: 0x0F3D},
	{Opcode: 0x0F3E},
	{Opcode: 0x0F3F},
	// 0F40-0F4F: cmovcc
	{Opcode: 0x0F40, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F41, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F42, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F43, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F44, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F45, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F46, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F47, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F48, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F49, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F4A, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F4B, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F4C, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F4D, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F4E, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0F4F, Flags: OS | ModRM | Nonfaulting},
	// 0F50-0F5F: sse arithmetic
	{Opcode: 0x0F50, Flags: IgnoreMod},
	{Opcode: 0x660F50, Flags: IgnoreMod},
	{Opcode: 0x0F51, Flags: ModRM},
	{Opcode: 0x660F51, Flags: ModRM},
	{Opcode: 0xF20F51, Flags: ModRM},
	{Opcode: 0xF30F51, Flags: ModRM},
	{Opcode: 0x0F52, Flags: ModRM},
	{Opcode: 0xF30F52, Flags: ModRM},
	{Opcode: 0x0F53, Flags: ModRM},
	{Opcode: 0xF30F53, Flags: ModRM},
	{Opcode: 0x0F54, Flags: ModRM},
	{Opcode: 0x660F54, Flags: ModRM},
	{Opcode: 0x0F55, Flags: ModRM},
	{Opcode: 0x660F55, Flags: ModRM},
	{Opcode: 0x0F56, Flags: ModRM},
	{Opcode: 0x660F56, Flags: ModRM},
	{Opcode: 0x0F57, Flags: ModRM},
	{Opcode: 0x660F57, Flags: ModRM},
	{Opcode: 0x0F58, Flags: ModRM},
	{Opcode: 0x660F58, Flags: ModRM},
	{Opcode: 0xF20F58, Flags: ModRM},
	{Opcode: 0xF30F58, Flags: ModRM},
	{Opcode: 0x0F59, Flags: ModRM},
	{Opcode: 0x660F59, Flags: ModRM},
	{Opcode: 0xF20F59, Flags: ModRM},
	{Opcode: 0xF30F59, Flags: ModRM},
	{Opcode: 0x0F5A, Flags: ModRM},
	{Opcode: 0x660F5A, Flags: ModRM},
	{Opcode: 0xF20F5A, Flags: ModRM},
	{Opcode: 0xF30F5A, Flags: ModRM},
	{Opcode: 0x0F5B, Flags: ModRM},
	{Opcode: 0x660F5B, Flags: ModRM},
	{Opcode: 0xF30F5B, Flags: ModRM},
	{Opcode: 0x0F5C, Flags: ModRM},
	{Opcode: 0x660F5C, Flags: ModRM},
	{Opcode: 0xF20F5C, Flags: ModRM},
	{Opcode: 0xF30F5C, Flags: ModRM},
	{Opcode: 0x0F5D, Flags: ModRM},
	{Opcode: 0x660F5D, Flags: ModRM},
	{Opcode: 0xF20F5D, Flags: ModRM},
	{Opcode: 0xF30F5D, Flags: ModRM},
	{Opcode: 0x0F5E, Flags: ModRM},
	{Opcode: 0x660F5E, Flags: ModRM},
	{Opcode: 0xF20F5E, Flags: ModRM},
	{Opcode: 0xF30F5E, Flags: ModRM},
	{Opcode: 0x0F5F, Flags: ModRM},
	{Opcode: 0x660F5F, Flags: ModRM},
	{Opcode: 0xF20F5F, Flags: ModRM},
	{Opcode: 0xF30F5F, Flags: ModRM},
	// 0F60-0F6F: mmx/sse2 pack and move
	{Opcode: 0x0F60, Flags: ModRM},
	{Opcode: 0x660F60, Flags: ModRM},
	{Opcode: 0x0F61, Flags: ModRM},
	{Opcode: 0x660F61, Flags: ModRM},
	{Opcode: 0x0F62, Flags: ModRM},
	{Opcode: 0x660F62, Flags: ModRM},
	{Opcode: 0x0F63, Flags: ModRM},
	{Opcode: 0x660F63, Flags: ModRM},
	{Opcode: 0x0F64, Flags: ModRM},
	{Opcode: 0x660F64, Flags: ModRM},
	{Opcode: 0x0F65, Flags: ModRM},
	{Opcode: 0x660F65, Flags: ModRM},
	{Opcode: 0x0F66, Flags: ModRM},
	{Opcode: 0x660F66, Flags: ModRM},
	{Opcode: 0x0F67, Flags: ModRM},
	{Opcode: 0x660F67, Flags: ModRM},
	{Opcode: 0x0F68, Flags: ModRM},
	{Opcode: 0x660F68, Flags: ModRM},
	{Opcode: 0x0F69, Flags: ModRM},
	{Opcode: 0x660F69, Flags: ModRM},
	{Opcode: 0x0F6A, Flags: ModRM},
	{Opcode: 0x660F6A, Flags: ModRM},
	{Opcode: 0x0F6B, Flags: ModRM},
	{Opcode: 0x660F6B, Flags: ModRM},
	{Opcode: 0x0F6C, Flags: ModRM},
	{Opcode: 0x660F6C, Flags: ModRM},
	{Opcode: 0x0F6D, Flags: ModRM},
	{Opcode: 0x660F6D, Flags: ModRM},
	{Opcode: 0x0F6E, Flags: ModRM},
	{Opcode: 0x660F6E, Flags: ModRM},
	{Opcode: 0x0F6F, Flags: ModRM},
	{Opcode: 0x660F6F, Flags: ModRM},
	{Opcode: 0xF30F6F, Flags: ModRM},
	// 0F70: pshuf with imm8
	{Opcode: 0x0F70, Flags: ModRM | Imm8},
	{Opcode: 0x660F70, Flags: ModRM | Imm8},
	{Opcode: 0xF20F70, Flags: ModRM | Imm8},
	{Opcode: 0xF30F70, Flags: ModRM | Imm8},
	// 0F71-0F73: shift-by-immediate groups; xmm forms carry 66
	{Opcode: 0x0F71, Flags: Group | Imm8, FixedG: 2},
	{Opcode: 0x660F71, Flags: Group | Imm8, FixedG: 2},
	{Opcode: 0x0F71, Flags: Group | Imm8, FixedG: 4},
	{Opcode: 0x660F71, Flags: Group | Imm8, FixedG: 4},
	{Opcode: 0x0F71, Flags: Group | Imm8, FixedG: 6},
	{Opcode: 0x660F71, Flags: Group | Imm8, FixedG: 6},
	{Opcode: 0x0F72, Flags: Group | Imm8, FixedG: 2},
	{Opcode: 0x660F72, Flags: Group | Imm8, FixedG: 2},
	{Opcode: 0x0F72, Flags: Group | Imm8, FixedG: 4},
	{Opcode: 0x660F72, Flags: Group | Imm8, FixedG: 4},
	{Opcode: 0x0F72, Flags: Group | Imm8, FixedG: 6},
	{Opcode: 0x660F72, Flags: Group | Imm8, FixedG: 6},
	{Opcode: 0x0F73, Flags: Group | Imm8, FixedG: 2},
	{Opcode: 0x660F73, Flags: Group | Imm8, FixedG: 2},
	{Opcode: 0x0F73, Flags: Group | Imm8, FixedG: 3},
	{Opcode: 0x660F73, Flags: Group | Imm8, FixedG: 3},
	{Opcode: 0x0F73, Flags: Group | Imm8, FixedG: 6},
	{Opcode: 0x660F73, Flags: Group | Imm8, FixedG: 6},
	{Opcode: 0x0F73, Flags: Group | Imm8, FixedG: 7},
	{Opcode: 0x660F73, Flags: Group | Imm8, FixedG: 7},
	// 0F74-0F77: pcmpeq, emms
	{Opcode: 0x0F74, Flags: ModRM},
	{Opcode: 0x660F74, Flags: ModRM},
	{Opcode: 0x0F75, Flags: ModRM},
	{Opcode: 0x660F75, Flags: ModRM},
	{Opcode: 0x0F76, Flags: ModRM},
	{Opcode: 0x660F76, Flags: ModRM},
	{Opcode: 0x0F77},
	// 0F78-0F7B: reserved
	{Opcode: 0x0F78},
	{Opcode: 0x0F79},
	{Opcode: 0x0F7A},
	{Opcode: 0x0F7B},
	// 0F7C-0F7F: horizontal adds and moves
	{Opcode: 0x0F7C, Flags: ModRM},
	{Opcode: 0x660F7C, Flags: ModRM},
	{Opcode: 0xF20F7C, Flags: ModRM},
	{Opcode: 0x0F7D, Flags: ModRM},
	{Opcode: 0x660F7D, Flags: ModRM},
	{Opcode: 0xF20F7D, Flags: ModRM},
	{Opcode: 0x0F7E, Flags: ModRM},
	{Opcode: 0x660F7E, Flags: ModRM},
	{Opcode: 0xF30F7E, Flags: ModRM},
	{Opcode: 0x0F7F, Flags: ModRM},
	{Opcode: 0x660F7F, Flags: ModRM},
	{Opcode: 0xF30F7F, Flags: ModRM},
	// 0F80-0F8F: jcc rel16/32
	{Opcode: 0x0F80, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F81, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F82, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F83, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F84, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F85, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F86, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F87, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F88, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F89, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F8A, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F8B, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F8C, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F8D, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F8E, Flags: OS | Imm1632 | BlockBoundary},
	{Opcode: 0x0F8F, Flags: OS | Imm1632 | BlockBoundary},
	// 0F90-0F9F: setcc
	{Opcode: 0x0F90, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F91, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F92, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F93, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F94, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F95, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F96, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F97, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F98, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F99, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F9A, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F9B, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F9C, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F9D, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F9E, Flags: ModRM | Nonfaulting},
	{Opcode: 0x0F9F, Flags: ModRM | Nonfaulting},
	// 0FA0-0FA7: fs stack ops, cpuid, bt, shld
	{Opcode: 0x0FA0, Flags: OS},
	{Opcode: 0x0FA1, Flags: OS},
	{Opcode: 0x0FA2},
	{Opcode: 0x0FA3, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0FA4, Flags: OS | ModRM | Imm8 | Nonfaulting},
	{Opcode: 0x0FA5, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0FA6},
	{Opcode: 0x0FA7},
	// 0FA8-0FAF: gs stack ops, rsm, bts, shrd, imul
	{Opcode: 0x0FA8, Flags: OS},
	{Opcode: 0x0FA9, Flags: OS},
	{Opcode: 0x0FAA},
	{Opcode: 0x0FAB, Flags: OS | ModRM},
	{Opcode: 0x0FAC, Flags: OS | ModRM | Imm8 | Nonfaulting},
	{Opcode: 0x0FAD, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0FAE, Flags: Group, FixedG: 0},
	{Opcode: 0x0FAE, Flags: Group, FixedG: 1},
	{Opcode: 0x0FAE, Flags: Group, FixedG: 2},
	{Opcode: 0x0FAE, Flags: Group, FixedG: 3},
	{Opcode: 0x0FAE, Flags: Group, FixedG: 5},
	{Opcode: 0x0FAE, Flags: Group, FixedG: 6},
	{Opcode: 0x0FAE, Flags: Group, FixedG: 7},
	{Opcode: 0x0FAF, Flags: OS | ModRM | Nonfaulting},
	// 0FB0-0FB7: cmpxchg, lss, btr, lfs, lgs, movzx
	{Opcode: 0x0FB0, Flags: ModRM},
	{Opcode: 0x0FB1, Flags: OS | ModRM},
	{Opcode: 0x0FB2, Flags: OS | ModRM},
	{Opcode: 0x0FB3, Flags: OS | ModRM},
	{Opcode: 0x0FB4, Flags: OS | ModRM},
	{Opcode: 0x0FB5, Flags: OS | ModRM},
	{Opcode: 0x0FB6, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0FB7, Flags: OS | ModRM | Nonfaulting},
	// 0FB8-0FBF: bit scans, bit-test group, movsx
	{Opcode: 0x0FB8},
	{Opcode: 0x0FB9},
	{Opcode: 0x0FBA, Flags: OS | Group | Imm8 | Nonfaulting, FixedG: 4},
	{Opcode: 0x0FBA, Flags: OS | Group | Imm8, FixedG: 5},
	{Opcode: 0x0FBA, Flags: OS | Group | Imm8, FixedG: 6},
	{Opcode: 0x0FBA, Flags: OS | Group | Imm8, FixedG: 7},
	{Opcode: 0x0FBB, Flags: OS | ModRM},
	{Opcode: 0x0FBC, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0FBD, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0FBE, Flags: OS | ModRM | Nonfaulting},
	{Opcode: 0x0FBF, Flags: OS | ModRM | Nonfaulting},
	// 0FC0-0FC7: xadd, cmpps, movnti, pinsrw, pextrw, shufps, cmpxchg8b
	{Opcode: 0x0FC0, Flags: ModRM},
	{Opcode: 0x0FC1, Flags: OS | ModRM},
	{Opcode: 0x0FC2, Flags: ModRM | Imm8},
	{Opcode: 0x660FC2, Flags: ModRM | Imm8},
	{Opcode: 0xF20FC2, Flags: ModRM | Imm8},
	{Opcode: 0xF30FC2, Flags: ModRM | Imm8},
	{Opcode: 0x0FC3, Flags: ModRM},
	{Opcode: 0x0FC4, Flags: ModRM | Imm8},
	{Opcode: 0x660FC4, Flags: ModRM | Imm8},
	{Opcode: 0x0FC5, Flags: ModRM | Imm8},
	{Opcode: 0x660FC5, Flags: ModRM | Imm8},
	{Opcode: 0x0FC6, Flags: ModRM | Imm8},
	{Opcode: 0x660FC6, Flags: ModRM | Imm8},
	{Opcode: 0x0FC7, Flags: Group, FixedG: 1},
	// 0FC8-0FCF: bswap
	{Opcode: 0x0FC8, Flags: Nonfaulting},
	{Opcode: 0x0FC9, Flags: Nonfaulting},
	{Opcode: 0x0FCA, Flags: Nonfaulting},
	{Opcode: 0x0FCB, Flags: Nonfaulting},
	{Opcode: 0x0FCC, Flags: Nonfaulting},
	{Opcode: 0x0FCD, Flags: Nonfaulting},
	{Opcode: 0x0FCE, Flags: Nonfaulting},
	{Opcode: 0x0FCF, Flags: Nonfaulting},
	// 0FD0-0FDF: mmx/sse2 arithmetic
	{Opcode: 0x0FD0, Flags: ModRM},
	{Opcode: 0x660FD0, Flags: ModRM},
	{Opcode: 0xF20FD0, Flags: ModRM},
	{Opcode: 0x0FD1, Flags: ModRM},
	{Opcode: 0x660FD1, Flags: ModRM},
	{Opcode: 0x0FD2, Flags: ModRM},
	{Opcode: 0x660FD2, Flags: ModRM},
	{Opcode: 0x0FD3, Flags: ModRM},
	{Opcode: 0x660FD3, Flags: ModRM},
	{Opcode: 0x0FD4, Flags: ModRM},
	{Opcode: 0x660FD4, Flags: ModRM},
	{Opcode: 0x0FD5, Flags: ModRM},
	{Opcode: 0x660FD5, Flags: ModRM},
	{Opcode: 0x0FD6, Flags: ModRM},
	{Opcode: 0x660FD6, Flags: ModRM},
	{Opcode: 0xF20FD6, Flags: ModRM},
	{Opcode: 0xF30FD6, Flags: ModRM},
	{Opcode: 0x0FD7, Flags: IgnoreMod},
	{Opcode: 0x660FD7, Flags: IgnoreMod},
	{Opcode: 0x0FD8, Flags: ModRM},
	{Opcode: 0x660FD8, Flags: ModRM},
	{Opcode: 0x0FD9, Flags: ModRM},
	{Opcode: 0x660FD9, Flags: ModRM},
	{Opcode: 0x0FDA, Flags: ModRM},
	{Opcode: 0x660FDA, Flags: ModRM},
	{Opcode: 0x0FDB, Flags: ModRM},
	{Opcode: 0x660FDB, Flags: ModRM},
	{Opcode: 0x0FDC, Flags: ModRM},
	{Opcode: 0x660FDC, Flags: ModRM},
	{Opcode: 0x0FDD, Flags: ModRM},
	{Opcode: 0x660FDD, Flags: ModRM},
	{Opcode: 0x0FDE, Flags: ModRM},
	{Opcode: 0x660FDE, Flags: ModRM},
	{Opcode: 0x0FDF, Flags: ModRM},
	{Opcode: 0x660FDF, Flags: ModRM},
	// 0FE0-0FEF: mmx/sse2 arithmetic
	{Opcode: 0x0FE0, Flags: ModRM},
	{Opcode: 0x660FE0, Flags: ModRM},
	{Opcode: 0x0FE1, Flags: ModRM},
	{Opcode: 0x660FE1, Flags: ModRM},
	{Opcode: 0x0FE2, Flags: ModRM},
	{Opcode: 0x660FE2, Flags: ModRM},
	{Opcode: 0x0FE3, Flags: ModRM},
	{Opcode: 0x660FE3, Flags: ModRM},
	{Opcode: 0x0FE4, Flags: ModRM},
	{Opcode: 0x660FE4, Flags: ModRM},
	{Opcode: 0x0FE5, Flags: ModRM},
	{Opcode: 0x660FE5, Flags: ModRM},
	{Opcode: 0x0FE6, Flags: ModRM},
	{Opcode: 0x660FE6, Flags: ModRM},
	{Opcode: 0xF20FE6, Flags: ModRM},
	{Opcode: 0xF30FE6, Flags: ModRM},
	{Opcode: 0x0FE7, Flags: ModRM},
	{Opcode: 0x660FE7, Flags: ModRM},
	{Opcode: 0x0FE8, Flags: ModRM},
	{Opcode: 0x660FE8, Flags: ModRM},
	{Opcode: 0x0FE9, Flags: ModRM},
	{Opcode: 0x660FE9, Flags: ModRM},
	{Opcode: 0x0FEA, Flags: ModRM},
	{Opcode: 0x660FEA, Flags: ModRM},
	{Opcode: 0x0FEB, Flags: ModRM},
	{Opcode: 0x660FEB, Flags: ModRM},
	{Opcode: 0x0FEC, Flags: ModRM},
	{Opcode: 0x660FEC, Flags: ModRM},
	{Opcode: 0x0FED, Flags: ModRM},
	{Opcode: 0x660FED, Flags: ModRM},
	{Opcode: 0x0FEE, Flags: ModRM},
	{Opcode: 0x660FEE, Flags: ModRM},
	{Opcode: 0x0FEF, Flags: ModRM},
	{Opcode: 0x660FEF, Flags: ModRM},
	// 0FF0-0FFF: lddqu, mmx/sse2 arithmetic
	{Opcode: 0x0FF0, Flags: ModRM},
	{Opcode: 0xF20FF0, Flags: ModRM},
	{Opcode: 0x0FF1, Flags: ModRM},
	{Opcode: 0x660FF1, Flags: ModRM},
	{Opcode: 0x0FF2, Flags: ModRM},
	{Opcode: 0x660FF2, Flags: ModRM},
	{Opcode: 0x0FF3, Flags: ModRM},
	{Opcode: 0x660FF3, Flags: ModRM},
	{Opcode: 0x0FF4, Flags: ModRM},
	{Opcode: 0x660FF4, Flags: ModRM},
	{Opcode: 0x0FF5, Flags: ModRM},
	{Opcode: 0x660FF5, Flags: ModRM},
	{Opcode: 0x0FF6, Flags: ModRM},
	{Opcode: 0x660FF6, Flags: ModRM},
	{Opcode: 0x0FF7, Flags: IgnoreMod},
	{Opcode: 0x660FF7, Flags: IgnoreMod},
	{Opcode: 0x0FF8, Flags: ModRM},
	{Opcode: 0x660FF8, Flags: ModRM},
	{Opcode: 0x0FF9, Flags: ModRM},
	{Opcode: 0x660FF9, Flags: ModRM},
	{Opcode: 0x0FFA, Flags: ModRM},
	{Opcode: 0x660FFA, Flags: ModRM},
	{Opcode: 0x0FFB, Flags: ModRM},
	{Opcode: 0x660FFB, Flags: ModRM},
	{Opcode: 0x0FFC, Flags: ModRM},
	{Opcode: 0x660FFC, Flags: ModRM},
	{Opcode: 0x0FFD, Flags: ModRM},
	{Opcode: 0x660FFD, Flags: ModRM},
	{Opcode: 0x0FFE, Flags: ModRM},
	{Opcode: 0x660FFE, Flags: ModRM},
	{Opcode: 0x0FFF},
}
