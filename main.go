// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program dispatchgen compiles x86 encoding tables into the dispatch
// sources of an interpreter.
package main

import (
	"log"

	"github.com/x86vm/dispatchgen/internal/cmd"
)

func main() {
	root := cmd.NewRoot()
	root.AddCommand(cmd.TreeCommand(), cmd.InspectCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
