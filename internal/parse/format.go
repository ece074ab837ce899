package parse

import (
	"regexp"
	"strings"
	"time"
)

// WhatsApp exports come in two header shapes:
//
//	[3/7/24, 9:15:42 PM] Alice: hello
//	25/12/2023, 21:05 - Alice: hello
//
// The date is locale-dependent (day-first or month-first), the clock may
// be 12h or 24h with or without seconds, and iOS exports put a narrow
// no-break space before AM/PM.
var (
	headerBracket = regexp.MustCompile(`^\[(\d{1,2}[./-]\d{1,2}[./-]\d{2,4}),? (\d{1,2}:\d{2}(?::\d{2})?(?: ?(?:AM|PM))?)\] (.*)$`)
	headerDashed  = regexp.MustCompile(`^(\d{1,2}[./-]\d{1,2}[./-]\d{2,4}),? (\d{1,2}:\d{2}(?::\d{2})?(?: ?(?:AM|PM))?) - (.*)$`)

	meridiemRe = regexp.MustCompile(`(?i)\b([ap])\.?m\.?`)
)

// dateLayouts are the candidate date formats, in tie-break preference
// order: month-first before day-first, so an exact vote tie on slashed
// dates commits month-first (the US export format). Dot-separated dates
// are the European convention and carry only day-first candidates.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2/1/2006",
	"2/1/06",
	"2.1.2006",
	"2.1.06",
}

// timeLayouts are unambiguous per line and tried in order.
var timeLayouts = []string{
	"15:04:05",
	"3:04:05 PM",
	"15:04",
	"3:04 PM",
}

// normalizeLine strips the invisible characters WhatsApp sprinkles into
// exports (LTR/RTL marks, no-break spaces before AM/PM) and upcases the
// meridiem so a single set of layouts matches.
func normalizeLine(line string) string {
	line = strings.Map(func(r rune) rune {
		switch r {
		case '‎', '‏': // direction marks
			return -1
		case ' ', ' ': // narrow/no-break space
			return ' '
		}
		return r
	}, line)
	line = meridiemRe.ReplaceAllStringFunc(line, func(m string) string {
		if m[0] == 'a' || m[0] == 'A' {
			return "AM"
		}
		return "PM"
	})
	return strings.TrimRight(line, "\r")
}

// header is a split header line before the date format is committed.
type header struct {
	dateStr string
	timeStr string
	rest    string // sender/body portion after the timestamp delimiter
}

// splitHeader matches a normalized line against both header shapes.
func splitHeader(line string) (header, bool) {
	if m := headerBracket.FindStringSubmatch(line); m != nil {
		return header{dateStr: canonDate(m[1]), timeStr: m[2], rest: m[3]}, true
	}
	if m := headerDashed.FindStringSubmatch(line); m != nil {
		return header{dateStr: canonDate(m[1]), timeStr: m[2], rest: m[3]}, true
	}
	return header{}, false
}

// canonDate rewrites dash-separated dates to slashes. Dots are kept:
// a dotted date selects the day-first dotted layouts in the vote.
func canonDate(s string) string {
	return strings.ReplaceAll(s, "-", "/")
}

// voteSample is how many header lines the format vote examines before
// committing to a date layout.
const voteSample = 512

// voteDateLayout samples headers, counts successful parses per candidate
// layout, and returns the winner. Returns "" when nothing parses.
func voteDateLayout(headers []header) string {
	votes := make([]int, len(dateLayouts))
	n := len(headers)
	if n > voteSample {
		n = voteSample
	}
	for _, h := range headers[:n] {
		for i, layout := range dateLayouts {
			if _, err := time.Parse(layout, h.dateStr); err == nil {
				votes[i]++
			}
		}
	}

	best, bestVotes := "", 0
	for i, layout := range dateLayouts {
		if votes[i] > bestVotes {
			best, bestVotes = layout, votes[i]
		}
	}
	return best
}

// parseStamp combines the committed date layout with a per-line time
// layout into a single timestamp.
func parseStamp(h header, dateLayout string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, h.dateStr)
	if err != nil {
		return time.Time{}, false
	}
	ts := strings.TrimSpace(h.timeStr)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, ts)
		if err != nil {
			continue
		}
		return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
	}
	return time.Time{}, false
}
