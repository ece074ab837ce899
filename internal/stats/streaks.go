package stats

import "time"

// busiestDay returns the timeline entry with the highest count, earliest
// date winning ties. The timeline is chronological, so a strict
// comparison gives the earliest maximum.
func busiestDay(timeline []DayCount) DayCount {
	var best DayCount
	for _, dc := range timeline {
		if dc.Count > best.Count {
			best = dc
		}
	}
	return best
}

// quietestDay returns the lowest non-zero timeline entry, earliest date
// winning ties.
func quietestDay(timeline []DayCount) DayCount {
	var best DayCount
	for _, dc := range timeline {
		if dc.Count == 0 {
			continue
		}
		if best.Count == 0 || dc.Count < best.Count {
			best = dc
		}
	}
	return best
}

// longestStreak finds the longest run of calendar-consecutive days with
// at least one message. Zero-count timeline entries are skipped, so the
// gap-filled timeline does not stretch runs. Days are compared as pure
// calendar dates via AddDate on UTC values, so daylight-saving
// transitions cannot split a run. No active days yields {0, "", ""}.
func longestStreak(timeline []DayCount) Streak {
	var best, cur Streak
	var prev time.Time

	for _, dc := range timeline {
		if dc.Count == 0 {
			continue
		}
		day, err := time.Parse(dayKeyLayout, dc.Day)
		if err != nil {
			continue
		}
		if cur.Days > 0 && day.Equal(prev.AddDate(0, 0, 1)) {
			cur.Days++
			cur.End = dc.Day
		} else {
			cur = Streak{Days: 1, Start: dc.Day, End: dc.Day}
		}
		if cur.Days > best.Days {
			best = cur
		}
		prev = day
	}
	return best
}
