// Package receipt mints the externally visible receipt identifiers.
package receipt

import (
	"fmt"
	"math/rand"
	"time"
)

// Number builds a receipt number of the form
// RCP-YYYYMMDD-<epoch millis>-<0..999>. The epoch component makes the
// value practically unique without a central sequence; the random
// suffix covers two requests landing in the same millisecond.
func Number(now time.Time) string {
	return fmt.Sprintf(
		"RCP-%s-%d-%d",
		now.Format("20060102"),
		now.UnixMilli(),
		rand.Intn(1000),
	)
}
