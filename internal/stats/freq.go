package stats

import (
	"sort"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/token"
)

// counter tallies labels while remembering each label's first-occurrence
// position, so ranked output never depends on map iteration order.
type counter struct {
	counts map[string]int
	first  map[string]int
	seen   int
}

func newCounter() *counter {
	return &counter{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.first[label] = c.seen
	}
	c.counts[label]++
	c.seen++
}

func (c *counter) total() int {
	sum := 0
	for _, v := range c.counts {
		sum += v
	}
	return sum
}

func (c *counter) distinct() int { return len(c.counts) }

// ranked returns labels sorted by count descending, first occurrence
// ascending. limit <= 0 means unlimited.
func (c *counter) ranked(limit int) []Count {
	out := make([]Count, 0, len(c.counts))
	for label, n := range c.counts {
		out = append(out, Count{Label: label, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return c.first[out[i].Label] < c.first[out[j].Label]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Cloud size caps: enough entries for a dense visual cloud without
// shipping the full vocabulary.
const (
	wordCloudCap  = 300
	emojiCloudCap = 100
)

// wordStats holds the token-frequency aggregation for one corpus pass.
type wordStats struct {
	words         *counter // all word tokens
	wordsFiltered *counter // stop words removed
	emojis        *counter
}

func aggregateTokens(c *corpus) *wordStats {
	ws := &wordStats{
		words:         newCounter(),
		wordsFiltered: newCounter(),
		emojis:        newCounter(),
	}
	for i := range c.msgs {
		for _, w := range c.words[i] {
			ws.words.add(w)
			if !token.IsStopWord(w) {
				ws.wordsFiltered.add(w)
			}
		}
		for _, e := range c.emojis[i] {
			ws.emojis.add(e)
		}
	}
	return ws
}
