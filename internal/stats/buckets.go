package stats

import (
	"fmt"
	"sort"
	"time"
)

// Calendar conventions, used everywhere including the streak calculator:
// weekday 0 = Sunday (time.Weekday's zero), month 0 = January, day keys
// are "2006-01-02", week keys "2006-W##" (ISO week).
const dayKeyLayout = "2006-01-02"

func dayKey(t time.Time) string { return t.Format(dayKeyLayout) }

func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// timeBuckets is the output of the single bucketing pass: global
// histograms, the date-keyed timeline, and per-sender buckets. Only
// counted (normal) messages participate.
type timeBuckets struct {
	daily    [7]int
	hourly   [24]int
	monthly  [12]int
	timeline []DayCount
	weekly   []Count

	persons     []*PersonBuckets // ordered by first appearance
	personIndex map[string]int

	perPersonDaily map[string][]DayCount
}

func bucketize(c *corpus) *timeBuckets {
	tb := &timeBuckets{
		personIndex:    make(map[string]int),
		perPersonDaily: make(map[string][]DayCount),
	}

	dayCounts := make(map[string]int)
	weekCounts := make(map[string]int)
	personDay := make(map[string]map[string]int)
	var dayOrder, weekOrder []string

	for i := range c.msgs {
		if !c.counted(i) {
			continue
		}
		m := &c.msgs[i]

		hour := m.Time.Hour()
		wd := int(m.Time.Weekday())
		month := int(m.Time.Month()) - 1

		tb.hourly[hour]++
		tb.daily[wd]++
		tb.monthly[month]++

		dk := dayKey(m.Time)
		if _, ok := dayCounts[dk]; !ok {
			dayOrder = append(dayOrder, dk)
		}
		dayCounts[dk]++

		wk := weekKey(m.Time)
		if _, ok := weekCounts[wk]; !ok {
			weekOrder = append(weekOrder, wk)
		}
		weekCounts[wk]++

		pb := tb.person(m.Sender)
		pb.Messages++
		pb.Hourly[hour]++
		pb.Daily[wd]++
		pb.Monthly[month]++

		pd := personDay[m.Sender]
		if pd == nil {
			pd = make(map[string]int)
			personDay[m.Sender] = pd
		}
		pd[dk]++
	}

	// The message list is time-sorted, so first-appearance order of day
	// and week keys is already chronological. The timeline covers every
	// calendar day from first to last, quiet days as zero entries, so
	// consumers can treat adjacent entries as adjacent days.
	if len(dayOrder) > 0 {
		start, _ := time.Parse(dayKeyLayout, dayOrder[0])
		end, _ := time.Parse(dayKeyLayout, dayOrder[len(dayOrder)-1])
		for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
			dk := dayKey(cur)
			tb.timeline = append(tb.timeline, DayCount{Day: dk, Count: dayCounts[dk]})
		}
	}
	for _, wk := range weekOrder {
		tb.weekly = append(tb.weekly, Count{Label: wk, Value: weekCounts[wk]})
	}
	for name, days := range personDay {
		keys := make([]string, 0, len(days))
		for dk := range days {
			keys = append(keys, dk)
		}
		sort.Strings(keys)
		series := make([]DayCount, 0, len(keys))
		for _, dk := range keys {
			series = append(series, DayCount{Day: dk, Count: days[dk]})
		}
		tb.perPersonDaily[name] = series
	}

	return tb
}

func (tb *timeBuckets) person(name string) *PersonBuckets {
	if idx, ok := tb.personIndex[name]; ok {
		return tb.persons[idx]
	}
	pb := &PersonBuckets{Name: name}
	tb.personIndex[name] = len(tb.persons)
	tb.persons = append(tb.persons, pb)
	return pb
}

// bySender ranks senders by message count, first appearance breaking ties.
func (tb *timeBuckets) bySender() []Count {
	out := make([]Count, 0, len(tb.persons))
	for _, pb := range tb.persons {
		out = append(out, Count{Label: pb.Name, Value: pb.Messages})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// shareOfSpeech computes each sender's percentage of the counted total.
func (tb *timeBuckets) shareOfSpeech(total int) []Share {
	ranked := tb.bySender()
	out := make([]Share, 0, len(ranked))
	for _, c := range ranked {
		pct := 0.0
		if total > 0 {
			pct = float64(c.Value) / float64(total) * 100
		}
		out = append(out, Share{Name: c.Label, Messages: c.Value, Percent: pct})
	}
	return out
}

// bucketsByPerson returns per-sender buckets in activity-rank order.
func (tb *timeBuckets) bucketsByPerson() []PersonBuckets {
	out := make([]PersonBuckets, 0, len(tb.persons))
	for _, pb := range tb.persons {
		out = append(out, *pb)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Messages > out[j].Messages })
	return out
}
