package booking

import "time"

// TimeSlots is the fixed half-hour grid customers can book,
// 09:00 through 17:30. Business hours are enforced by this list
// itself, not by runtime validation of arbitrary times.
var TimeSlots = []string{
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"12:00", "12:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00", "17:30",
}

const DateLayout = "2006-01-02"

func IsValidSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

func IsValidDate(d string) bool {
	_, err := time.Parse(DateLayout, d)
	return err == nil
}
