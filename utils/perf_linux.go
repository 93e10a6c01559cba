//go:build linux
// +build linux

package utils

import (
	perf "github.com/hodgesds/perf-utils"
)

// CountInstructions runs f under a hardware instruction counter and
// returns the number of retired instructions. Requires perf_event
// access (kernel.perf_event_paranoid permitting).
func CountInstructions(f func()) (instructions uint64, err error) {
	profileValue, err := perf.CPUInstructions(func() error {
		f()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return profileValue.Value, nil
}
