// SPDX-License-Identifier: Unlicense OR MIT

// Package log is a thin wrapper around the standard library log
// package, mirroring gio's own preference for plain log.Printf over a
// structured-logging dependency (app/log_windows.go, the example/*
// programs). It exists to carry the original Rust source's pervasive
// debug!(...) traces (tiles.rs's per-strip, per-edge logging) without
// costing production callers anything.
package log

import "log"

// Verbose gates Debugf. Off by default, so the tiler's hot per-edge
// loop pays nothing unless a caller opts in.
var Verbose = false

// Debugf logs format/args through the standard logger when Verbose is
// set.
func Debugf(format string, args ...any) {
	if !Verbose {
		return
	}
	log.Printf(format, args...)
}
