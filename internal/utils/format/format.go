// Package format holds small human-readable formatting helpers shared
// by the progress dashboard and the end-of-run metrics summary.
package format

import (
	"fmt"
	"time"
)

// Duration renders d the same way internal/metrics and internal/progress
// both want their timings shown: adaptive units, three decimal places.
func Duration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%.3fns", float64(d)/float64(time.Nanosecond))
	case d < time.Millisecond:
		return fmt.Sprintf("%.3fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.3fs", float64(d)/float64(time.Second))
	}
}
