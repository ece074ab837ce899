package stats

import (
	"sort"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/sentiment"
)

// sentimentAcc accumulates scores for one bucket.
type sentimentAcc struct {
	sum           float64
	pos, neu, neg int
}

func (a *sentimentAcc) add(score float64) {
	a.sum += score
	switch sentiment.Classify(score) {
	case 1:
		a.pos++
	case -1:
		a.neg++
	default:
		a.neu++
	}
}

func (a *sentimentAcc) n() int { return a.pos + a.neu + a.neg }

// mean returns the average score, 0 for an empty bucket (never NaN).
func (a *sentimentAcc) mean() float64 {
	if a.n() == 0 {
		return 0
	}
	return a.sum / float64(a.n())
}

// sentimentStats is the per-(sender, day), per-sender, and global
// per-day sentiment aggregation over one corpus pass. A message is
// sentiment-eligible when it is a counted message with at least one
// word or emoji token, so an emoji-only reply still registers.
type sentimentStats struct {
	byDay    []SentimentDay
	overall  []SentimentOverall
	dayMood  map[string]*sentimentAcc // global per-day, feeds the journey curator
	eligible int
}

type senderDay struct {
	name string
	day  string
}

func aggregateSentiment(c *corpus, senderOrder []Count) *sentimentStats {
	ss := &sentimentStats{dayMood: make(map[string]*sentimentAcc)}

	perDay := make(map[senderDay]*sentimentAcc)
	perSender := make(map[string]*sentimentAcc)

	for i := range c.msgs {
		if len(c.words[i]) == 0 && len(c.emojis[i]) == 0 {
			continue
		}
		score := sentiment.Score(c.words[i], c.emojis[i])
		ss.eligible++

		m := &c.msgs[i]
		dk := dayKey(m.Time)

		key := senderDay{name: m.Sender, day: dk}
		acc := perDay[key]
		if acc == nil {
			acc = &sentimentAcc{}
			perDay[key] = acc
		}
		acc.add(score)

		sacc := perSender[m.Sender]
		if sacc == nil {
			sacc = &sentimentAcc{}
			perSender[m.Sender] = sacc
		}
		sacc.add(score)

		dacc := ss.dayMood[dk]
		if dacc == nil {
			dacc = &sentimentAcc{}
			ss.dayMood[dk] = dacc
		}
		dacc.add(score)
	}

	for key, acc := range perDay {
		ss.byDay = append(ss.byDay, SentimentDay{
			Name: key.name,
			Day:  key.day,
			Mean: acc.mean(),
			Pos:  acc.pos,
			Neu:  acc.neu,
			Neg:  acc.neg,
		})
	}
	sort.Slice(ss.byDay, func(i, j int) bool {
		if ss.byDay[i].Day != ss.byDay[j].Day {
			return ss.byDay[i].Day < ss.byDay[j].Day
		}
		return ss.byDay[i].Name < ss.byDay[j].Name
	})

	// Overall rows follow the sender activity ranking; a sender with no
	// eligible messages still gets a neutral row.
	for _, s := range senderOrder {
		acc := perSender[s.Label]
		if acc == nil {
			acc = &sentimentAcc{}
		}
		ss.overall = append(ss.overall, SentimentOverall{
			Name: s.Label,
			Mean: acc.mean(),
			Pos:  acc.pos,
			Neu:  acc.neu,
			Neg:  acc.neg,
		})
	}

	return ss
}
