// Released under an MIT license. See LICENSE.

package clock

import "time"

var epoch = time.Now() //nolint:gochecknoglobals

// fallback measures from process start using Go's monotonic clock reading.
func fallback() float64 {
	return time.Since(epoch).Seconds()
}
