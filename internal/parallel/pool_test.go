// SPDX-License-Identifier: Unlicense OR MIT

package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewZeroWorkersUsesGOMAXPROCS(t *testing.T) {
	p := New(0)
	if want := runtime.GOMAXPROCS(0); p.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", p.Workers(), want)
	}
}

func TestNewNegativeWorkersUsesGOMAXPROCS(t *testing.T) {
	p := New(-3)
	if want := runtime.GOMAXPROCS(0); p.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", p.Workers(), want)
	}
}

func TestRunExecutesEveryJob(t *testing.T) {
	p := New(4)
	var count atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { count.Add(1) }
	}
	p.Run(jobs)
	if got := count.Load(); got != 100 {
		t.Fatalf("count = %d, want 100", got)
	}
}

func TestRunEmptyIsNoOp(t *testing.T) {
	p := New(4)
	p.Run(nil)
}

func TestRunFewerJobsThanWorkers(t *testing.T) {
	p := New(8)
	var count atomic.Int64
	jobs := []func(){
		func() { count.Add(1) },
		func() { count.Add(1) },
	}
	p.Run(jobs)
	if got := count.Load(); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
}
