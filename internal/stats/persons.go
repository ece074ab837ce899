package stats

// palette provides display colors assigned by activity rank. Rendering
// is free to ignore these; they only exist so the same person keeps the
// same color everywhere.
var palette = []string{
	"#25d366", "#34b7f1", "#ff8a65", "#ba68c8",
	"#ffd54f", "#4db6ac", "#f06292", "#a1887f",
}

// personStats computes per-sender word and emoji statistics, ordered by
// the sender activity ranking.
func personStats(c *corpus, senderOrder []Count, topEmojis int) []PersonStat {
	type acc struct {
		words    *counter
		emojis   *counter
		messages int
		longest  int
	}
	accs := make(map[string]*acc)

	for i := range c.msgs {
		if !c.counted(i) {
			continue
		}
		m := &c.msgs[i]
		a := accs[m.Sender]
		if a == nil {
			a = &acc{words: newCounter(), emojis: newCounter()}
			accs[m.Sender] = a
		}
		a.messages++
		for _, w := range c.words[i] {
			a.words.add(w)
		}
		if n := len(c.words[i]); n > a.longest {
			a.longest = n
		}
		for _, e := range c.emojis[i] {
			a.emojis.add(e)
		}
	}

	out := make([]PersonStat, 0, len(senderOrder))
	for rank, s := range senderOrder {
		a := accs[s.Label]
		if a == nil {
			continue
		}
		ps := PersonStat{
			Name:                s.Label,
			TotalWords:          a.words.total(),
			UniqueWords:         a.words.distinct(),
			LongestMessageWords: a.longest,
			TopEmojis:           a.emojis.ranked(topEmojis),
			Color:               palette[rank%len(palette)],
		}
		if a.messages > 0 {
			ps.AverageWords = float64(ps.TotalWords) / float64(a.messages)
		}
		out = append(out, ps)
	}
	return out
}

// wordTotal sums word tokens across the corpus.
func wordTotal(c *corpus) int {
	n := 0
	for i := range c.msgs {
		n += len(c.words[i])
	}
	return n
}
