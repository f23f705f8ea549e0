// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"sort"

	"github.com/x86vm/dispatchgen/x86"
)

// shape is the exclusive structural classification of one encoding.
// Exactly one applies to every valid record.
type shape int

const (
	shapeModRM     shape = iota // modrm with a register-field operand
	shapeGroup                  // opcode-extension group member
	shapeIgnoreMod              // modrm whose mode bits carry no meaning
	shapeLea                    // address computation without a memory access
	shapePrefix                 // prefix byte folded into the flag word
	shapeCustom                 // handler consumes the byte stream itself
	shapeBare                   // no modrm, immediates at most
)

const (
	primaryImms = x86.Imm8 | x86.Imm8S | x86.Imm16 | x86.Imm1632 | x86.Imm32 | x86.ImmAddr
	extraImms   = x86.ExtraImm8 | x86.ExtraImm16
)

// classify assigns the single shape of an encoding or reports the
// contradiction that prevents one.
func classify(rec x86.Encoding) (shape, error) {
	if err := checkImms(rec); err != nil {
		return 0, err
	}
	switch p := rec.MandatoryPrefix(); p {
	case 0, x86.Prefix66, x86.PrefixF2, x86.PrefixF3:
	default:
		return 0, encodingErr(rec, fmt.Sprintf("unsupported prefix byte %02X", p))
	}

	structural := []struct {
		flag x86.Flags
		s    shape
	}{
		{x86.ModRM, shapeModRM},
		{x86.Group, shapeGroup},
		{x86.IgnoreMod, shapeIgnoreMod},
		{x86.Lea, shapeLea},
		{x86.Prefix, shapePrefix},
	}
	found := shapeBare
	n := 0
	for _, c := range structural {
		if rec.Is(c.flag) {
			found = c.s
			n++
		}
	}
	if n > 1 {
		return 0, encodingErr(rec, "contradictory structural flags")
	}
	if n == 0 {
		if rec.Is(x86.Custom) {
			if rec.Flags&(primaryImms|extraImms) != 0 {
				return 0, encodingErr(rec, "custom form reads its own operands")
			}
			return shapeCustom, nil
		}
		return shapeBare, nil
	}
	switch found {
	case shapeGroup:
		if rec.FixedG < 0 || rec.FixedG > 7 {
			return 0, encodingErr(rec, fmt.Sprintf("extension value %d out of range", rec.FixedG))
		}
		if rec.Is(x86.Custom | x86.Nonfaulting) {
			return 0, encodingErr(rec, "custom group member cannot be nonfaulting")
		}
	case shapePrefix:
		if rec.Flags != x86.Prefix {
			return 0, encodingErr(rec, "prefix byte cannot carry other attributes")
		}
	case shapeIgnoreMod, shapeLea:
		if rec.Flags&(primaryImms|extraImms) != 0 {
			return 0, encodingErr(rec, "form cannot take an immediate")
		}
	}
	if rec.Is(x86.Custom) && found != shapeGroup {
		return 0, encodingErr(rec, "custom convention contradicts the modrm shape")
	}
	return found, nil
}

func checkImms(rec x86.Encoding) error {
	prim := rec.Flags & primaryImms
	if prim != 0 && prim&(prim-1) != 0 {
		return encodingErr(rec, "more than one primary immediate")
	}
	extra := rec.Flags & extraImms
	if extra == extraImms {
		return encodingErr(rec, "more than one secondary immediate")
	}
	if extra != 0 && prim == 0 {
		return encodingErr(rec, "secondary immediate without a primary")
	}
	if rec.Is(x86.Imm1632) && !rec.Is(x86.OS) {
		return encodingErr(rec, "size-dependent immediate on a single-size form")
	}
	return nil
}

// classified pairs an encoding with its shape.
type classified struct {
	rec   x86.Encoding
	shape shape
}

// slot holds every encoding of one opcode byte on one map, ordered by
// extension value and then by mandatory prefix.
type slot struct {
	opcode int
	ext    bool
	recs   []classified
}

// os reports whether any form in the slot splits on operand size. The
// whole slot is then emitted once per size; single-size siblings
// repeat unchanged.
func (s *slot) os() bool {
	for _, c := range s.recs {
		if c.rec.Is(x86.OS) {
			return true
		}
	}
	return false
}

func (s *slot) group() bool { return s.recs[0].shape == shapeGroup }

func (s *slot) usesModRM() bool { return s.recs[0].rec.UsesModRM() }

// members returns the slot's records for one extension value, base
// form first. Meaningful only on group slots.
func (s *slot) members(g int) []classified {
	var out []classified
	for _, c := range s.recs {
		if c.rec.FixedG == g {
			out = append(out, c)
		}
	}
	return out
}

func prefixRank(p int) int {
	switch p {
	case 0:
		return 0
	case x86.Prefix66:
		return 1
	case x86.PrefixF2:
		return 2
	case x86.PrefixF3:
		return 3
	}
	return 4
}

// checkVariants validates one dispatch unit, either a whole slot or
// one group member set. Any unit bigger than a single unprefixed form
// needs a runtime prefix test, which requires an unprefixed base to
// fall back on and rules out nonfaulting members: the call site is
// picked at run time, so no single site can be proven fault-free.
func checkVariants(recs []classified) error {
	if len(recs) == 1 && recs[0].rec.MandatoryPrefix() == 0 {
		return nil
	}
	base := false
	for _, c := range recs {
		if c.rec.Is(x86.Nonfaulting) {
			return encodingErr(c.rec, "prefix-dispatched form cannot be nonfaulting")
		}
		if c.rec.MandatoryPrefix() == 0 {
			base = true
		}
	}
	if !base {
		return encodingErr(recs[0].rec, "no unprefixed base form")
	}
	return nil
}

// buildSlot classifies one opcode's encodings and checks that they
// agree on structure: prefix variants may not disagree about modrm use
// or group membership, no two records may claim the same
// (extension, prefix) pair, and every dispatch unit satisfies
// checkVariants. Synthesis assumes slots built here are sound.
func buildSlot(ext bool, opcode int, recs []x86.Encoding) (*slot, error) {
	s := &slot{opcode: opcode, ext: ext}
	for _, rec := range recs {
		sh, err := classify(rec)
		if err != nil {
			return nil, err
		}
		s.recs = append(s.recs, classified{rec: rec, shape: sh})
	}
	sort.SliceStable(s.recs, func(i, j int) bool {
		a, b := s.recs[i].rec, s.recs[j].rec
		if a.FixedG != b.FixedG {
			return a.FixedG < b.FixedG
		}
		return prefixRank(a.MandatoryPrefix()) < prefixRank(b.MandatoryPrefix())
	})
	first := s.recs[0]
	seen := make(map[[2]int]bool)
	for _, c := range s.recs {
		if c.rec.UsesModRM() != first.rec.UsesModRM() {
			return nil, encodingErr(c.rec, "modrm use differs between variants of one opcode")
		}
		if (c.shape == shapeGroup) != (first.shape == shapeGroup) {
			return nil, encodingErr(c.rec, "group and non-group forms share an opcode")
		}
		key := [2]int{c.rec.FixedG, c.rec.MandatoryPrefix()}
		if seen[key] {
			return nil, encodingErr(c.rec, "duplicate encoding")
		}
		seen[key] = true
	}
	if s.group() {
		for g := 0; g < 8; g++ {
			if members := s.members(g); len(members) > 0 {
				if err := checkVariants(members); err != nil {
					return nil, err
				}
			}
		}
	} else if err := checkVariants(s.recs); err != nil {
		return nil, err
	}
	return s, nil
}

// opcodeMap is one fully covered 256-entry table.
type opcodeMap struct {
	ext   bool
	slots [256]*slot
}

// buildMaps partitions the dataset into the one-byte and 0F maps and
// validates that both are total. The first missing opcode, in
// ascending order, is reported.
func buildMaps(recs []x86.Encoding) (plain, ext *opcodeMap, err error) {
	var perSlot [2][256][]x86.Encoding
	for _, rec := range recs {
		m := 0
		if rec.Extended() {
			m = 1
		}
		perSlot[m][rec.Byte()] = append(perSlot[m][rec.Byte()], rec)
	}
	maps := [2]*opcodeMap{{ext: false}, {ext: true}}
	for m := 0; m < 2; m++ {
		for op := 0; op < 256; op++ {
			if len(perSlot[m][op]) == 0 {
				return nil, nil, coverageErr(m == 1, op)
			}
			s, err := buildSlot(m == 1, op, perSlot[m][op])
			if err != nil {
				return nil, nil, err
			}
			maps[m].slots[op] = s
		}
	}
	return maps[0], maps[1], nil
}
