// Package timer prints human-readable elapsed-time reports.
//
// Two shapes are supported. A Scope times an arbitrary block:
//
//	defer timer.Start(timer.WithLabel("load")).Stop()
//
// and the Wrap family times every call of a function:
//
//	train := timer.Wrap1(trainModel)
//	model := train(data)
//
// Both print exactly one line per completed block or call, on every exit
// path including panics:
//
//	⏱️  [load] finished in 200.41 ms
package timer

import (
	"fmt"
	"time"
)

// Format renders d with a unit chosen from its magnitude: nanoseconds,
// microseconds and milliseconds with two decimals, seconds with four.
func Format(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}

// FormatSeconds is Format for a duration expressed in seconds.
func FormatSeconds(seconds float64) string {
	switch {
	case seconds < 1e-6:
		return fmt.Sprintf("%.2f ns", seconds*1e9)
	case seconds < 1e-3:
		return fmt.Sprintf("%.2f µs", seconds*1e6)
	case seconds < 1:
		return fmt.Sprintf("%.2f ms", seconds*1e3)
	default:
		return fmt.Sprintf("%.4f s", seconds)
	}
}

func report(c *config, label string, elapsed time.Duration) {
	fmt.Fprintf(c.out, "⏱️  [%s] finished in %s\n", label, Format(elapsed)) //nolint:errcheck
}
