// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestTreeCommand(t *testing.T) {
	cmd := TreeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"80"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	outs := out.String()
	wants := []string{
		"modrm_byte >> 3 & 7",
		"instr_80_0_mem(addr, read_imm8())",
		"instr_80_7_reg(modrm_byte & 7, read_imm8())",
		"trigger_ud()",
	}
	for _, want := range wants {
		if !strings.Contains(outs, want) {
			t.Errorf("%q not found in tree output:\n%s", want, outs)
		}
	}
}

func TestTreeCommandSizeSplit(t *testing.T) {
	cmd := TreeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"05"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	outs := out.String()
	for _, want := range []string{"os16", "os32", "instr16_05(read_imm16())", "instr32_05(read_imm32s())"} {
		if !strings.Contains(outs, want) {
			t.Errorf("%q not found in tree output:\n%s", want, outs)
		}
	}
}

func TestTreeCommandBadOpcode(t *testing.T) {
	cmd := TreeCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"zz"})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() succeeded on a bad opcode, want error")
	}
}
