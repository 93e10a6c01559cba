//go:build !linux
// +build !linux

package utils

import "fmt"

// CountInstructions requires linux perf_event support; on other
// platforms f is run without instrumentation.
func CountInstructions(f func()) (instructions uint64, err error) {
	f()
	return 0, fmt.Errorf("instruction counting requires linux perf support")
}
