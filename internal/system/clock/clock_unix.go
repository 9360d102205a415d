// Released under an MIT license. See LICENSE.

//go:build darwin || freebsd || linux

// Package clock provides the monotonic time source behind lox's clock builtin.
package clock

import (
	"golang.org/x/sys/unix"
)

// Seconds returns the current reading of the monotonic clock in seconds.
// Readings are only meaningful relative to each other.
func Seconds() float64 {
	var ts unix.Timespec

	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return fallback()
	}

	return float64(ts.Nano()) / 1e9
}
