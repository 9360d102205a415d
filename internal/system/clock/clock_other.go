// Released under an MIT license. See LICENSE.

//go:build !(darwin || freebsd || linux)

package clock

// Seconds returns the current reading of the monotonic clock in seconds.
// Readings are only meaningful relative to each other.
func Seconds() float64 {
	return fallback()
}
