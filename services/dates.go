package services

import "time"

// DateLayout is the calendar-day form used everywhere dates cross a
// boundary: availability queries, delivery dates, validation labels.
const DateLayout = "2006-01-02"

// orderingZone is the single civil time zone for "today"/"tomorrow".
// Device-local time is never used, so availability lookups agree
// across time zones.
var orderingZone = loadOrderingZone()

// nowFunc is swapped in tests.
var nowFunc = time.Now

func loadOrderingZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

func Now() time.Time {
	return nowFunc().In(orderingZone)
}

func Today() string {
	return Now().Format(DateLayout)
}

func Tomorrow() string {
	return Now().AddDate(0, 0, 1).Format(DateLayout)
}

// ValidDate reports whether s is a well-formed calendar day.
func ValidDate(s string) bool {
	_, err := time.ParseInLocation(DateLayout, s, orderingZone)
	return err == nil
}
