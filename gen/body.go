// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"strconv"

	"github.com/x86vm/dispatchgen/ir"
	"github.com/x86vm/dispatchgen/x86"
)

// Expression and statement text shared by every synthesized body. The
// symbols are part of the contract with the runtime support code.
const (
	readModRM    = "let modrm_byte = read_modrm_byte();"
	resolveAddr  = "let addr = modrm_resolve(modrm_byte);"
	memCond      = "modrm_byte < 0xC0"
	rmBits       = "modrm_byte & 7"
	regBits      = "modrm_byte >> 3 & 7"
	rawModRM     = "modrm_byte"
	trapCallee   = "trigger_ud"
	noFaultStmt  = "mark_nonfaulting();"
	endBlockStmt = "end_block();"
)

// prefixOrder is the fixed test priority of mandatory-prefix dispatch.
var prefixOrder = []int{x86.Prefix66, x86.PrefixF2, x86.PrefixF3}

func prefixCond(p int) string {
	return fmt.Sprintf("prefixes & PREFIX_%02X != 0", p)
}

func trap() ir.Node { return &ir.Call{Callee: trapCallee} }

// appendStmts tacks trailing statements onto a node, flattening into
// an existing sequence.
func appendStmts(n ir.Node, more ...ir.Node) ir.Node {
	if s, ok := n.(*ir.Seq); ok {
		s.Stmts = append(s.Stmts, more...)
		return s
	}
	return &ir.Seq{Stmts: append([]ir.Node{n}, more...)}
}

// bodyFor synthesizes the dispatch body of one slot at one requested
// operand size. The modrm byte is read once up front when any form in
// the slot consumes it.
func bodyFor(s *slot, size int) (ir.Node, error) {
	var body ir.Node
	var err error
	if s.group() {
		body, err = groupSwitch(s, size)
	} else {
		body, err = variantDispatch(s.recs, size)
	}
	if err != nil {
		return nil, err
	}
	if !s.usesModRM() {
		return body, nil
	}
	return &ir.Seq{Stmts: []ir.Node{ir.Literal(readModRM), body}}, nil
}

// groupSwitch dispatches an opcode-extension group on the modrm
// register field. Only declared extension values get cases; everything
// else is an undefined encoding and traps.
func groupSwitch(s *slot, size int) (ir.Node, error) {
	var cases []ir.Case
	for g := 0; g < 8; g++ {
		members := s.members(g)
		if len(members) == 0 {
			continue
		}
		body, err := variantDispatch(members, size)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ir.Case{Labels: []string{strconv.Itoa(g)}, Body: body})
	}
	return &ir.Switch{Expr: regBits, Cases: cases, Default: trap()}, nil
}

// variantDispatch tests the accumulated prefix flags when an opcode
// (or one group member) has mandatory-prefix variants. 66 wins over F2
// over F3 and the unprefixed form is the fallback, so an instruction
// stream carrying several prefixes still decodes deterministically.
// checkVariants has already guaranteed the base form exists.
func variantDispatch(recs []classified, size int) (ir.Node, error) {
	if len(recs) == 1 && recs[0].rec.MandatoryPrefix() == 0 {
		return recordBody(recs[0], size)
	}
	var base *classified
	byPrefix := make(map[int]*classified)
	for i := range recs {
		c := &recs[i]
		if p := c.rec.MandatoryPrefix(); p == 0 {
			base = c
		} else {
			byPrefix[p] = c
		}
	}
	var branches []ir.Branch
	for _, p := range prefixOrder {
		c, ok := byPrefix[p]
		if !ok {
			continue
		}
		body, err := recordBody(*c, size)
		if err != nil {
			return nil, err
		}
		branches = append(branches, ir.Branch{Cond: prefixCond(p), Body: body})
	}
	els, err := recordBody(*base, size)
	if err != nil {
		return nil, err
	}
	return &ir.If{Branches: branches, Else: els}, nil
}

// recordBody emits the call structure of one encoding. Nonfaulting
// markers go after call sites that provably cannot fault; block
// boundaries close out the whole structure.
func recordBody(c classified, size int) (ir.Node, error) {
	rec := c.rec
	name := handlerName(rec, size)
	imms, err := immExprs(rec, size)
	if err != nil {
		return nil, err
	}
	var body ir.Node
	switch c.shape {
	case shapeModRM:
		body = modrmSplit(rec, name, imms, true)
	case shapeGroup:
		if rec.Is(x86.Custom) {
			body = &ir.Call{Callee: name, Args: append([]string{rawModRM}, imms...)}
		} else {
			body = modrmSplit(rec, name, imms, false)
		}
	case shapeIgnoreMod:
		body = markNonfaulting(rec, &ir.Call{Callee: name, Args: []string{rmBits, regBits}})
	case shapeLea:
		body = leaSplit(rec, name)
	case shapePrefix:
		body = &ir.Call{Callee: name, Conv: ir.OrFlags}
	case shapeCustom:
		body = markNonfaulting(rec, &ir.Call{Callee: name})
	case shapeBare:
		body = markNonfaulting(rec, &ir.Call{Callee: name, Args: imms})
	default:
		return nil, encodingErr(rec, "unclassified encoding")
	}
	if rec.Is(x86.BlockBoundary) {
		body = appendStmts(body, ir.Literal(endBlockStmt))
	}
	return body, nil
}

func immExprs(rec x86.Encoding, size int) ([]string, error) {
	primary, secondary, err := planImms(rec, resolvedSize(rec, size))
	if err != nil {
		return nil, err
	}
	var args []string
	if primary != immNone {
		args = append(args, primary.expr())
	}
	if secondary != immNone {
		args = append(args, secondary.expr())
	}
	return args, nil
}

func markNonfaulting(rec x86.Encoding, call ir.Node) ir.Node {
	if !rec.Is(x86.Nonfaulting) {
		return call
	}
	return appendStmts(call, ir.Literal(noFaultStmt))
}

// modrmSplit emits the memory/register test of one modrm form. The
// memory branch resolves the operand address first; the register
// branch passes the low modrm bits. The register field rides along
// when it selects an operand of its own. Only the register branch can
// be nonfaulting, since the memory branch always touches memory.
func modrmSplit(rec x86.Encoding, name string, imms []string, regOperand bool) ir.Node {
	memArgs := []string{"addr"}
	regArgs := []string{rmBits}
	if regOperand {
		memArgs = append(memArgs, regBits)
		regArgs = append(regArgs, regBits)
	}
	memArgs = append(memArgs, imms...)
	regArgs = append(regArgs, imms...)
	mem := &ir.Seq{Stmts: []ir.Node{
		ir.Literal(resolveAddr),
		&ir.Call{Callee: name + "_mem", Args: memArgs},
	}}
	var reg ir.Node = &ir.Call{Callee: name + "_reg", Args: regArgs}
	if rec.Is(x86.Nonfaulting) {
		reg = appendStmts(reg, ir.Literal(noFaultStmt))
	}
	return &ir.If{
		Branches: []ir.Branch{{Cond: memCond, Body: mem}},
		Else:     reg,
	}
}

// leaSplit handles the address-computation form: the memory branch
// passes the computed address straight through without loading from
// it, the register branch is not a valid encoding.
func leaSplit(rec x86.Encoding, name string) ir.Node {
	stmts := []ir.Node{
		ir.Literal(resolveAddr),
		&ir.Call{Callee: name + "_mem", Args: []string{"addr", regBits}},
	}
	if rec.Is(x86.Nonfaulting) {
		stmts = append(stmts, ir.Literal(noFaultStmt))
	}
	return &ir.If{
		Branches: []ir.Branch{{Cond: memCond, Body: &ir.Seq{Stmts: stmts}}},
		Else:     trap(),
	}
}
