package service

import (
	"fmt"
	"time"
)

// DayBucket is one calendar day's time range used to group sales for the
// dashboard chart. Start and End are both inclusive.
type DayBucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Monday-first label table. time.Weekday counts Sunday as 0, so the
// weekday is reindexed with w == 0 ? 6 : w-1 before lookup.
var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ValidWindowDays lists the analytics windows the dashboard supports.
var ValidWindowDays = []int{7, 14, 30, 90}

// BuildDayBuckets returns one bucket per calendar day, oldest first, with
// the last bucket covering now's day. The 7-day window labels buckets with
// abbreviated weekday names; longer windows use "Day 1"…"Day N".
// Unsupported day counts fall back to the 7-day behavior.
func BuildDayBuckets(now time.Time, days int) []DayBucket {
	switch days {
	case 7, 14, 30, 90:
	default:
		days = 7
	}

	buckets := make([]DayBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		// Day+1 normalizes across month ends and DST transitions, so the
		// end always lands on 23:59:59.999999999 of the same calendar day.
		end := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location()).Add(-time.Nanosecond)

		var label string
		if days == 7 {
			w := int(day.Weekday())
			idx := w - 1
			if w == 0 {
				idx = 6
			}
			label = weekdayLabels[idx]
		} else {
			label = fmt.Sprintf("Day %d", days-i)
		}

		buckets = append(buckets, DayBucket{Label: label, Start: start, End: end})
	}

	return buckets
}

// WindowDaysForPeriod maps a period query parameter ("7d", "14d", "30d",
// "90d") to its day count. Anything unrecognized falls back to 7; an
// invalid period is not an error.
func WindowDaysForPeriod(period string) int {
	switch period {
	case "7d":
		return 7
	case "14d":
		return 14
	case "30d":
		return 30
	case "90d":
		return 90
	default:
		return 7
	}
}
