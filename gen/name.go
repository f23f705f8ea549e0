// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"strings"

	"github.com/x86vm/dispatchgen/x86"
)

// handlerName builds the handler symbol of one encoding. Size-split
// forms carry the resolved operand size; the mandatory prefix, the 0F
// escape and the opcode byte follow in upper-case hex, and group
// members end in their extension value.
//
//	instr16_05   instr_660F2A   instr_80_0   instr_F390
func handlerName(rec x86.Encoding, size int) string {
	var b strings.Builder
	b.WriteString("instr")
	if rec.Is(x86.OS) {
		fmt.Fprintf(&b, "%d", size)
	}
	b.WriteByte('_')
	if p := rec.MandatoryPrefix(); p != 0 {
		fmt.Fprintf(&b, "%02X", p)
	}
	if rec.Extended() {
		b.WriteString("0F")
	}
	fmt.Fprintf(&b, "%02X", rec.Byte())
	if rec.Is(x86.Group) {
		fmt.Fprintf(&b, "_%d", rec.FixedG)
	}
	return b.String()
}
