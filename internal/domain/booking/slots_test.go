package booking

import "testing"

func TestTimeSlotsGrid(t *testing.T) {
	if len(TimeSlots) != 18 {
		t.Fatalf("expected 18 half-hour slots, got %d", len(TimeSlots))
	}
	if TimeSlots[0] != "09:00" {
		t.Fatalf("grid must start at 09:00, got %s", TimeSlots[0])
	}
	if TimeSlots[len(TimeSlots)-1] != "17:30" {
		t.Fatalf("grid must end at 17:30, got %s", TimeSlots[len(TimeSlots)-1])
	}
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range TimeSlots {
		if !IsValidSlot(s) {
			t.Fatalf("grid slot %s rejected", s)
		}
	}

	for _, s := range []string{"08:30", "18:00", "09:15", "9:00", "", "09:00:00"} {
		if IsValidSlot(s) {
			t.Fatalf("off-grid slot %s accepted", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2026-08-31") {
		t.Fatalf("valid date rejected")
	}

	for _, d := range []string{"31-08-2026", "2026/08/31", "2026-13-01", "tomorrow", ""} {
		if IsValidDate(d) {
			t.Fatalf("invalid date %q accepted", d)
		}
	}
}
