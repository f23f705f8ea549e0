// Copyright 2024 The dispatchgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"
)

// parseOpcode reads an opcode chain from the command line: the opcode
// byte in hex, preceded by 0F for the extended map and by a mandatory
// prefix where one applies.
func parseOpcode(s string) (int, error) {
	hexed := strings.TrimPrefix(strings.ToUpper(s), "0X")
	v, err := strconv.ParseInt(hexed, 16, 32)
	if err != nil || v < 0 || v > 0xFFFFFF {
		return 0, fmt.Errorf("bad opcode %q: want hex like 05, 0FAF or F30F10", s)
	}
	return int(v), nil
}

// printStats reports the generator's own resource usage, for quick
// regression checks when the dataset grows.
func printStats(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		fmt.Fprintf(w, "stats unavailable: %v\n", err)
		return
	}
	if v, err := p.MemoryInfo(); err == nil {
		fmt.Fprintf(w, "rss:\t%v KiB\n", v.RSS/1024)
	}
	if v, err := p.CPUPercent(); err == nil {
		fmt.Fprintf(w, "cpu usage:\t%.3f%%\n", v)
	}
	if v, err := p.NumThreads(); err == nil {
		fmt.Fprintf(w, "threads:\t%v\n", v)
	}
	if v, err := elapsedTime(p); err == nil {
		fmt.Fprintf(w, "elapsed time:\t%v\n", v)
	}
}

// elapsedTime shows the elapsed time of the process indicating how long the
// process has been running for.
func elapsedTime(p *process.Process) (string, error) {
	crtTime, err := p.CreateTime()
	if err != nil {
		return "", err
	}
	etime := time.Since(time.Unix(crtTime/1000, 0))
	return fmtEtimeDuration(etime), nil
}

// fmtEtimeDuration formats etime's duration based on ps' format:
// [[DD-]hh:]mm:ss
// format specification: http://linuxcommand.org/lc3_man_pages/ps1.html
func fmtEtimeDuration(d time.Duration) string {
	days := d / (24 * time.Hour)
	hours := d % (24 * time.Hour)
	minutes := hours % time.Hour
	seconds := math.Mod(minutes.Seconds(), 60)
	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%02d-", days)
	}
	if days > 0 || hours/time.Hour > 0 {
		fmt.Fprintf(&b, "%02d:", hours/time.Hour)
	}
	fmt.Fprintf(&b, "%02d:", minutes/time.Minute)
	fmt.Fprintf(&b, "%02.0f", seconds)
	return b.String()
}
