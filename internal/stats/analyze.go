package stats

import (
	"fmt"
	"time"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/parse"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/token"
)

// Default ranked-list sizes when the caller passes n <= 0.
const (
	DefaultTopWords  = 10
	DefaultTopEmojis = 10
)

// corpus is the parsed message list plus per-message token slices,
// computed once and read by every aggregator. Counting policy: only
// normal messages enter statistics; media placeholders keep their
// activity counts but contribute no tokens; deleted and system messages
// appear only in their own totals.
type corpus struct {
	msgs   []parse.Message
	words  [][]string // nil unless the message is counted, non-media text
	emojis [][]string
	media  []bool
}

func (c *corpus) counted(i int) bool { return c.msgs[i].Kind == parse.KindNormal }

func newCorpus(msgs []parse.Message) *corpus {
	c := &corpus{
		msgs:   msgs,
		words:  make([][]string, len(msgs)),
		emojis: make([][]string, len(msgs)),
		media:  make([]bool, len(msgs)),
	}
	for i := range msgs {
		if msgs[i].Kind != parse.KindNormal {
			continue
		}
		if parse.IsMediaPlaceholder(msgs[i].Body) {
			c.media[i] = true
			continue
		}
		c.words[i] = token.Words(msgs[i].Body)
		c.emojis[i] = token.Emojis(msgs[i].Body)
	}
	return c
}

// Analyze parses a raw export and computes the full Summary. It is a
// pure function of its input: no I/O, deterministic byte-identical
// output for identical input. topWords and topEmojis size the ranked
// word/emoji lists; non-positive values fall back to the defaults.
func Analyze(raw string, topWords, topEmojis int) (*Summary, error) {
	if topWords <= 0 {
		topWords = DefaultTopWords
	}
	if topEmojis <= 0 {
		topEmojis = DefaultTopEmojis
	}

	msgs, err := parse.Parse(raw)
	if err != nil {
		return nil, err
	}
	c := newCorpus(msgs)

	tb := bucketize(c)
	ws := aggregateTokens(c)
	ps := extractPhrases(c)

	s := &Summary{
		Daily:    tb.daily,
		Hourly:   tb.hourly,
		Monthly:  tb.monthly,
		Timeline: tb.timeline,
		Weekly:   tb.weekly,

		BySender:        tb.bySender(),
		BucketsByPerson: tb.bucketsByPerson(),
		PerPersonDaily:  tb.perPersonDaily,

		// The plain lists are stop-word filtered; the "no_stop" lists
		// skip the filtering and keep everything.
		TopWords:        ws.wordsFiltered.ranked(topWords),
		TopWordsNoStop:  ws.words.ranked(topWords),
		TopEmojis:       ws.emojis.ranked(topEmojis),
		WordCloud:       ws.wordsFiltered.ranked(wordCloudCap),
		WordCloudNoStop: ws.words.ranked(wordCloudCap),
		EmojiCloud:      ws.emojis.ranked(emojiCloudCap),

		SalientPhrases:         ps.salientRanked(salientPhraseN),
		TopPhrases:             ps.filtered.ranked(topPhraseN),
		TopPhrasesNoStop:       ps.all.ranked(topPhraseN),
		PerPersonPhrases:       perPersonRanked(ps.perFiltered, perPersonPhraseN),
		PerPersonPhrasesNoStop: perPersonRanked(ps.perPerson, perPersonPhraseN),
	}

	for i := range msgs {
		switch msgs[i].Kind {
		case parse.KindNormal:
			s.TotalMessages++
			if c.media[i] {
				s.FunFacts.MediaMessages++
			}
		case parse.KindDeletedByYou:
			s.DeletedYou++
		case parse.KindDeletedByOther:
			s.DeletedOthers++
		case parse.KindSystem:
			s.FunFacts.SystemEvents++
		}
	}

	s.ShareOfSpeech = tb.shareOfSpeech(s.TotalMessages)
	s.PersonStats = personStats(c, s.BySender, topEmojis)

	ss := aggregateSentiment(c, s.BySender)
	s.SentimentByDay = ss.byDay
	s.SentimentOverall = ss.overall

	s.ConversationStarters, s.ConversationCount = conversations(c)

	s.FunFacts.BusiestDay = busiestDay(tb.timeline)
	s.FunFacts.QuietestDay = quietestDay(tb.timeline)
	s.FunFacts.LongestStreak = longestStreak(tb.timeline)
	s.FunFacts.MostActiveHour = argmax(tb.hourly[:])
	s.FunFacts.MostActiveWeekday = time.Weekday(argmax(tb.daily[:])).String()
	s.FunFacts.TotalEmojis = ws.emojis.total()
	if s.TotalMessages > 0 {
		s.FunFacts.AverageWords = float64(wordTotal(c)) / float64(s.TotalMessages)
	}

	s.Journey = curateJourney(c, tb.timeline, ss.dayMood)

	if err := verify(s, ss.eligible); err != nil {
		return nil, err
	}
	return s, nil
}

// argmax returns the index of the first maximum.
func argmax(xs []int) int {
	best := 0
	for i, v := range xs {
		if v > xs[best] {
			best = i
		}
	}
	return best
}

// verify runs the cross-field reconciliation checks. A failure here is a
// bug in the aggregation, surfaced rather than swallowed.
func verify(s *Summary, sentimentEligible int) error {
	personTotal := 0
	for _, pb := range s.BucketsByPerson {
		personTotal += pb.Messages
		h, d, m := sumInts(pb.Hourly[:]), sumInts(pb.Daily[:]), sumInts(pb.Monthly[:])
		if h != pb.Messages || d != pb.Messages || m != pb.Messages {
			return fmt.Errorf("%w: bucket sums for %q disagree (messages=%d hourly=%d daily=%d monthly=%d)",
				ErrInvariant, pb.Name, pb.Messages, h, d, m)
		}
	}
	if personTotal != s.TotalMessages {
		return fmt.Errorf("%w: per-person totals %d != total messages %d",
			ErrInvariant, personTotal, s.TotalMessages)
	}

	starterTotal := 0
	for _, c := range s.ConversationStarters {
		starterTotal += c.Value
	}
	if starterTotal != s.ConversationCount {
		return fmt.Errorf("%w: starter counts %d != conversation count %d",
			ErrInvariant, starterTotal, s.ConversationCount)
	}

	classified := 0
	for _, so := range s.SentimentOverall {
		if so.Mean < -1 || so.Mean > 1 {
			return fmt.Errorf("%w: sentiment mean %v outside [-1,1] for %q",
				ErrInvariant, so.Mean, so.Name)
		}
		classified += so.Pos + so.Neu + so.Neg
	}
	if classified != sentimentEligible {
		return fmt.Errorf("%w: classified sentiment messages %d != eligible %d",
			ErrInvariant, classified, sentimentEligible)
	}

	return nil
}

func sumInts(xs []int) int {
	n := 0
	for _, v := range xs {
		n += v
	}
	return n
}
