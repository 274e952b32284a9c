package timezone

import "time"

const DefaultTimezone = "Asia/Manila"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Now is the wall clock of the shop. "Today" for revenue figures and
// receipt dates is defined in this zone.
func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}
