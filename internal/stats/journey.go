package stats

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Journey curation knobs: excerpt window size, moment cap, minimum
// calendar spacing between selected moments, rolling-baseline width for
// volume spikes, and the thresholds below which a day is not interesting.
const (
	journeyWindow      = 3
	maxMoments         = 5
	momentSpacingDays  = 7
	volumeBaselineDays = 7
	volumeSpikeFactor  = 2.0
	volumeSpikeFloor   = 8
	moodThreshold      = 0.4
	moodMinMessages    = 3
	excerptMaxRunes    = 120
)

type momentCandidate struct {
	moment Moment
	score  float64 // selection weight; moments are picked by |score|
}

// curateJourney picks the first/last excerpts and a bounded set of
// interesting moments. Weak signal degrades to fewer or zero moments,
// never an error.
func curateJourney(c *corpus, timeline []DayCount, dayMood map[string]*sentimentAcc) Journey {
	j := Journey{
		First: excerptRange(c, journeyWindow, true),
		Last:  excerptRange(c, journeyWindow, false),
	}
	j.Moments = selectMoments(momentCandidates(c, timeline, dayMood))
	return j
}

// excerptRange takes up to n counted messages from the head or tail.
func excerptRange(c *corpus, n int, fromStart bool) []Excerpt {
	var out []Excerpt
	if fromStart {
		for i := 0; i < len(c.msgs) && len(out) < n; i++ {
			if c.counted(i) {
				out = append(out, excerpt(c, i))
			}
		}
		return out
	}
	for i := len(c.msgs) - 1; i >= 0 && len(out) < n; i-- {
		if c.counted(i) {
			out = append(out, excerpt(c, i))
		}
	}
	// collected backwards
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

func excerpt(c *corpus, i int) Excerpt {
	body := c.msgs[i].Body
	if runes := []rune(body); len(runes) > excerptMaxRunes {
		body = string(runes[:excerptMaxRunes]) + "…"
	}
	return Excerpt{
		Time:   c.msgs[i].Time.Format(time.RFC3339),
		Sender: c.msgs[i].Sender,
		Body:   body,
	}
}

func momentCandidates(c *corpus, timeline []DayCount, dayMood map[string]*sentimentAcc) []momentCandidate {
	var cands []momentCandidate

	moodOf := func(day string) float64 {
		if acc := dayMood[day]; acc != nil {
			return acc.mean()
		}
		return 0
	}

	// Volume spikes against a rolling baseline of the preceding days.
	for i, dc := range timeline {
		if i == 0 {
			continue
		}
		lo := i - volumeBaselineDays
		if lo < 0 {
			lo = 0
		}
		sum := 0
		for _, prev := range timeline[lo:i] {
			sum += prev.Count
		}
		baseline := float64(sum) / float64(i-lo)
		if baseline <= 0 || dc.Count < volumeSpikeFloor {
			continue
		}
		ratio := float64(dc.Count) / baseline
		if ratio < volumeSpikeFactor {
			continue
		}
		cands = append(cands, momentCandidate{
			score: ratio / volumeSpikeFactor,
			moment: Moment{
				Title: "A burst of messages",
				Description: fmt.Sprintf("%d messages in one day, about %.0fx the usual pace",
					dc.Count, ratio),
				Date:      dc.Day,
				Messages:  dayExcerpt(c, dc.Day),
				Sentiment: moodOf(dc.Day),
			},
		})
	}

	// Sentiment extrema on days with enough scored messages.
	for _, dc := range timeline {
		acc := dayMood[dc.Day]
		if acc == nil || acc.n() < moodMinMessages {
			continue
		}
		mean := acc.mean()
		if math.Abs(mean) < moodThreshold {
			continue
		}
		title, desc := "A really good day", "The conversation turned unusually upbeat"
		if mean < 0 {
			title, desc = "A rough day", "The conversation took an unusually heavy turn"
		}
		cands = append(cands, momentCandidate{
			score: mean,
			moment: Moment{
				Title:       title,
				Description: desc,
				Date:        dc.Day,
				Messages:    dayExcerpt(c, dc.Day),
				Sentiment:   mean,
			},
		})
	}

	return cands
}

// selectMoments ranks candidates by |score| and keeps the top ones that
// are at least momentSpacingDays apart, one per day.
func selectMoments(cands []momentCandidate) []Moment {
	sort.SliceStable(cands, func(i, j int) bool {
		ai, aj := math.Abs(cands[i].score), math.Abs(cands[j].score)
		if ai != aj {
			return ai > aj
		}
		return cands[i].moment.Date < cands[j].moment.Date
	})

	var out []Moment
	for _, cand := range cands {
		day, err := time.Parse(dayKeyLayout, cand.moment.Date)
		if err != nil {
			continue
		}
		tooClose := false
		for _, acc := range out {
			accDay, _ := time.Parse(dayKeyLayout, acc.Date)
			if gap := day.Sub(accDay).Hours() / 24; math.Abs(gap) < momentSpacingDays {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		out = append(out, cand.moment)
		if len(out) >= maxMoments {
			break
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// dayExcerpt returns the first few counted messages of one calendar day.
func dayExcerpt(c *corpus, day string) []Excerpt {
	var out []Excerpt
	for i := range c.msgs {
		if !c.counted(i) || dayKey(c.msgs[i].Time) != day {
			continue
		}
		out = append(out, excerpt(c, i))
		if len(out) >= journeyWindow {
			break
		}
	}
	return out
}
