package stats

import (
	"sort"
	"strings"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/token"
)

// N-gram extraction bounds and list sizes.
const (
	minGram = 2
	maxGram = 4

	topPhraseN       = 10
	salientPhraseN   = 15
	perPersonPhraseN = 5
)

// phraseStats holds global and per-sender n-gram counters for both the
// unfiltered and stop-word-filtered variants.
type phraseStats struct {
	all         *counter
	filtered    *counter
	perPerson   map[string]*counter
	perFiltered map[string]*counter
}

// keepFiltered decides whether an n-gram belongs in the filtered
// variant: its edge words must not be stop words and at least one word
// must be a content word. This keeps "pizza night" while dropping
// "of the" and "on the way to".
func keepFiltered(gram []string) bool {
	if token.IsStopWord(gram[0]) || token.IsStopWord(gram[len(gram)-1]) {
		return false
	}
	for _, w := range gram {
		if !token.IsStopWord(w) {
			return true
		}
	}
	return false
}

// extractPhrases enumerates contiguous n-grams (2-4 words) within each
// message; n-grams never span message boundaries.
func extractPhrases(c *corpus) *phraseStats {
	ps := &phraseStats{
		all:         newCounter(),
		filtered:    newCounter(),
		perPerson:   make(map[string]*counter),
		perFiltered: make(map[string]*counter),
	}

	for i := range c.msgs {
		words := c.words[i]
		if len(words) < minGram {
			continue
		}
		sender := c.msgs[i].Sender
		pc := ps.perPerson[sender]
		if pc == nil {
			pc = newCounter()
			ps.perPerson[sender] = pc
			ps.perFiltered[sender] = newCounter()
		}
		pn := ps.perFiltered[sender]

		for n := minGram; n <= maxGram; n++ {
			for start := 0; start+n <= len(words); start++ {
				gram := words[start : start+n]
				text := strings.Join(gram, " ")
				ps.all.add(text)
				pc.add(text)
				if keepFiltered(gram) {
					ps.filtered.add(text)
					pn.add(text)
				}
			}
		}
	}
	return ps
}

// salience scores an n-gram as frequency times distinct-word count:
// repetition-inflated grams ("ha ha ha") are discounted, and a
// super-gram outranks the sub-grams it fully explains, which the
// containment de-dup below relies on.
func salience(text string, count int) float64 {
	words := strings.Fields(text)
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[w] = struct{}{}
	}
	return float64(count) * float64(len(distinct))
}

// containsPhrase reports whether needle appears in haystack as a
// contiguous word-boundary subsequence.
func containsPhrase(haystack, needle string) bool {
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}

// salientRanked returns the top filtered phrases by salience. A
// candidate fully contained in an already-accepted phrase is skipped, so
// a frequent super-gram does not surface all of its sub-grams with it.
func (ps *phraseStats) salientRanked(limit int) []Phrase {
	cands := make([]Phrase, 0, ps.filtered.distinct())
	for text, n := range ps.filtered.counts {
		cands = append(cands, Phrase{Text: text, Count: n, Salience: salience(text, n)})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Salience != cands[j].Salience {
			return cands[i].Salience > cands[j].Salience
		}
		if cands[i].Count != cands[j].Count {
			return cands[i].Count > cands[j].Count
		}
		return ps.filtered.first[cands[i].Text] < ps.filtered.first[cands[j].Text]
	})

	out := make([]Phrase, 0, limit)
	for _, cand := range cands {
		contained := false
		for _, acc := range out {
			if containsPhrase(acc.Text, cand.Text) {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		out = append(out, cand)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// perPersonRanked produces the per-sender top-phrase maps.
func perPersonRanked(m map[string]*counter, limit int) map[string][]Count {
	out := make(map[string][]Count, len(m))
	for name, c := range m {
		if ranked := c.ranked(limit); len(ranked) > 0 {
			out[name] = ranked
		}
	}
	return out
}
