// Package prof wraps the runtime profilers behind start functions that
// return their own stop. Callers hold no file handles and cannot stop a
// profiler they never started.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// StartCPU enables CPU profiling with samples written to path. The
// returned stop flushes the profile and closes the file; calling it
// more than once is safe.
func StartCPU(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	return once(func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}), nil
}

// StartTrace writes runtime execution trace data to path until the
// returned stop is called.
func StartTrace(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start runtime trace: %w", err)
	}
	return once(func() {
		trace.Stop()
		_ = f.Close()
	}), nil
}

// WriteHeap captures a heap profile to path. A GC runs first so the
// profile reflects live objects rather than garbage.
func WriteHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write heap profile: %w", err)
	}
	return f.Close()
}

func once(fn func()) func() {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		fn()
	}
}
