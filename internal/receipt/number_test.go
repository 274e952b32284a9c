package receipt

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var numberPattern = regexp.MustCompile(`^RCP-\d{8}-\d+-\d{1,3}$`)

func TestNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	n := Number(now)
	if !numberPattern.MatchString(n) {
		t.Fatalf("receipt number %q does not match expected format", n)
	}
	if !strings.HasPrefix(n, "RCP-20260831-") {
		t.Fatalf("receipt number %q does not carry the issue date", n)
	}
}

func TestNumberSameMillisecond(t *testing.T) {
	// Two requests in the same millisecond share the date and epoch
	// components; only the random suffix separates them. Collisions
	// are possible, so assert the suffix actually spreads rather than
	// demanding full uniqueness.
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	distinct := make(map[string]bool)
	for i := 0; i < 500; i++ {
		n := Number(now)
		if !numberPattern.MatchString(n) {
			t.Fatalf("receipt number %q does not match expected format", n)
		}
		distinct[n] = true
	}

	// 500 draws over a 0..999 suffix yield roughly 400 distinct
	// values; anything under 100 means the suffix is not random.
	if len(distinct) < 100 {
		t.Fatalf("suffix barely varies within one millisecond: %d distinct of 500", len(distinct))
	}
}
