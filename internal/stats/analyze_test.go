package stats

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/parse"
)

const sampleExport = `1/2/24, 9:00 - Messages and calls are end-to-end encrypted. No one outside of this chat can read them.
1/2/24, 9:01 - Alice: good morning! today is going to be great
1/2/24, 9:02 - Bob: morning! coffee first
and then we can talk
about the weekend plans
1/2/24, 9:05 - Alice: pizza night friday? 🍕
1/2/24, 9:06 - Bob: pizza night friday sounds perfect 🍕🍕
1/2/24, 18:30 - Alice: <Media omitted>
1/2/24, 18:31 - Bob: This message was deleted
2/2/24, 10:00 - Alice: ugh terrible day, everything went wrong
2/2/24, 10:05 - Bob: sorry to hear that
3/2/24, 22:00 - Alice: You deleted this message
3/2/24, 22:01 - Alice: anyway pizza night friday!
`

func analyzeSample(t *testing.T) *Summary {
	t.Helper()
	s, err := Analyze(sampleExport, 10, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return s
}

func TestAnalyzeTotalsReconcile(t *testing.T) {
	s := analyzeSample(t)

	personTotal := 0
	for _, pb := range s.BucketsByPerson {
		personTotal += pb.Messages
		if h := sumInts(pb.Hourly[:]); h != pb.Messages {
			t.Errorf("%s: hourly sum %d != messages %d", pb.Name, h, pb.Messages)
		}
		if d := sumInts(pb.Daily[:]); d != pb.Messages {
			t.Errorf("%s: daily sum %d != messages %d", pb.Name, d, pb.Messages)
		}
		if m := sumInts(pb.Monthly[:]); m != pb.Messages {
			t.Errorf("%s: monthly sum %d != messages %d", pb.Name, m, pb.Messages)
		}
	}
	if personTotal != s.TotalMessages {
		t.Errorf("person total %d != total messages %d", personTotal, s.TotalMessages)
	}

	// 11 logical messages: 1 system, 2 deleted, 8 normal (media
	// placeholder included).
	if s.TotalMessages != 8 {
		t.Errorf("total messages = %d, want 8", s.TotalMessages)
	}
	if s.DeletedYou != 1 || s.DeletedOthers != 1 {
		t.Errorf("deleted = you %d / others %d, want 1/1", s.DeletedYou, s.DeletedOthers)
	}
	if s.FunFacts.SystemEvents != 1 {
		t.Errorf("system events = %d, want 1", s.FunFacts.SystemEvents)
	}
	if s.FunFacts.MediaMessages != 1 {
		t.Errorf("media messages = %d, want 1", s.FunFacts.MediaMessages)
	}

	timelineTotal := 0
	for _, dc := range s.Timeline {
		timelineTotal += dc.Count
	}
	if timelineTotal != s.TotalMessages {
		t.Errorf("timeline total %d != total messages %d", timelineTotal, s.TotalMessages)
	}
}

func TestAnalyzeMultilineCountedOnce(t *testing.T) {
	s := analyzeSample(t)
	// Bob's 3-line coffee message is one logical message, so he has 3
	// counted messages, not 5.
	for _, c := range s.BySender {
		if c.Label == "Bob" && c.Value != 3 {
			t.Errorf("Bob messages = %d, want 3", c.Value)
		}
	}
}

func TestAnalyzeDeletedExcludedFromWords(t *testing.T) {
	s := analyzeSample(t)
	for _, w := range s.WordCloud {
		if w.Label == "deleted" {
			t.Errorf("deleted-message text leaked into word stats: %v", w)
		}
	}
	for _, w := range s.WordCloud {
		if w.Label == "omitted" || w.Label == "media" {
			t.Errorf("media placeholder text leaked into word stats: %v", w)
		}
	}
}

func TestAnalyzeConversations(t *testing.T) {
	s := analyzeSample(t)
	// Gaps over 4h: 9:06->18:30, 18:31->10:00 next day, 10:05->22:00.
	if s.ConversationCount != 4 {
		t.Errorf("conversation count = %d, want 4", s.ConversationCount)
	}
	starterTotal := 0
	for _, c := range s.ConversationStarters {
		starterTotal += c.Value
	}
	if starterTotal != s.ConversationCount {
		t.Errorf("starter total %d != conversation count %d", starterTotal, s.ConversationCount)
	}
}

func TestAnalyzeTimelineFillsQuietDays(t *testing.T) {
	s, err := Analyze("9/1/19, 10:00 - A: hi\n9/3/19, 10:00 - B: hello\n", 10, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []DayCount{
		{Day: "2019-09-01", Count: 1},
		{Day: "2019-09-02", Count: 0},
		{Day: "2019-09-03", Count: 1},
	}
	if len(s.Timeline) != len(want) {
		t.Fatalf("timeline = %+v, want %+v", s.Timeline, want)
	}
	for i, dc := range want {
		if s.Timeline[i] != dc {
			t.Errorf("timeline[%d] = %+v, want %+v", i, s.Timeline[i], dc)
		}
	}
}

func TestAnalyzeTopWordsStopwordContract(t *testing.T) {
	// The plain word lists are stop-word filtered; the "no stop" lists
	// skip the filtering and keep function words like "the".
	s, err := Analyze("1/2/24, 10:00 - A: the the hello world\n", 10, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	find := func(counts []Count, label string) int {
		for _, c := range counts {
			if c.Label == label {
				return c.Value
			}
		}
		return 0
	}
	if n := find(s.TopWordsNoStop, "the"); n != 2 {
		t.Errorf("top_words_no_stop[the] = %d, want 2", n)
	}
	if n := find(s.TopWords, "the"); n != 0 {
		t.Errorf("top_words[the] = %d, want absent", n)
	}
	if n := find(s.TopWords, "hello"); n != 1 {
		t.Errorf("top_words[hello] = %d, want 1", n)
	}
	if n := find(s.WordCloudNoStop, "the"); n != 2 {
		t.Errorf("word_cloud_no_stop[the] = %d, want 2", n)
	}
	if n := find(s.WordCloud, "the"); n != 0 {
		t.Errorf("word_cloud[the] = %d, want absent", n)
	}
}

func TestAnalyzeSentimentBounds(t *testing.T) {
	s := analyzeSample(t)
	for _, sd := range s.SentimentByDay {
		if sd.Mean < -1 || sd.Mean > 1 {
			t.Errorf("sentiment mean %v out of range for %s/%s", sd.Mean, sd.Name, sd.Day)
		}
		if sd.Pos < 0 || sd.Neu < 0 || sd.Neg < 0 {
			t.Errorf("negative sentiment counts: %+v", sd)
		}
	}
	for _, so := range s.SentimentOverall {
		if so.Mean < -1 || so.Mean > 1 {
			t.Errorf("overall mean %v out of range for %s", so.Mean, so.Name)
		}
	}
}

func TestAnalyzeEmojiOnlySentiment(t *testing.T) {
	// A message with no words but a polar emoji still counts toward
	// sentiment.
	s, err := Analyze("1/2/24, 10:00 - A: 😭\n1/2/24, 10:01 - B: what happened?\n", 10, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	var a *SentimentOverall
	for i := range s.SentimentOverall {
		if s.SentimentOverall[i].Name == "A" {
			a = &s.SentimentOverall[i]
		}
	}
	if a == nil {
		t.Fatal("no sentiment row for A")
	}
	if a.Neg != 1 || a.Mean >= 0 {
		t.Errorf("emoji-only message not scored: %+v", *a)
	}
}

func TestAnalyzeEmojis(t *testing.T) {
	s := analyzeSample(t)
	if len(s.TopEmojis) == 0 || s.TopEmojis[0].Label != "🍕" {
		t.Fatalf("top emojis = %v, want 🍕 first", s.TopEmojis)
	}
	if s.TopEmojis[0].Value != 3 {
		t.Errorf("🍕 count = %d, want 3", s.TopEmojis[0].Value)
	}
}

func TestAnalyzeShareOfSpeech(t *testing.T) {
	s := analyzeSample(t)
	total := 0.0
	for _, sh := range s.ShareOfSpeech {
		total += sh.Percent
	}
	if total < 99.9 || total > 100.1 {
		t.Errorf("share percentages sum to %v, want 100", total)
	}
}

func TestAnalyzeJourney(t *testing.T) {
	s := analyzeSample(t)
	if len(s.Journey.First) == 0 || len(s.Journey.Last) == 0 {
		t.Fatal("journey excerpts missing")
	}
	if s.Journey.First[0].Sender != "Alice" {
		t.Errorf("first excerpt sender = %q", s.Journey.First[0].Sender)
	}
	if s.Journey.Last[len(s.Journey.Last)-1].Body != "anyway pizza night friday!" {
		t.Errorf("last excerpt = %+v", s.Journey.Last)
	}
	// Short history: moments may be empty, but never more than the cap.
	if len(s.Journey.Moments) > maxMoments {
		t.Errorf("too many moments: %d", len(s.Journey.Moments))
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a, err := Analyze(sampleExport, 10, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := Analyze(sampleExport, 10, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Error("identical input produced different summaries")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze("", 0, 0); !errors.Is(err, parse.ErrEmptyInput) {
		t.Errorf("empty input: err = %v", err)
	}
	if _, err := Analyze("no timestamps here\nat all", 0, 0); !errors.Is(err, parse.ErrUnrecognizedFormat) {
		t.Errorf("garbage input: err = %v", err)
	}
}
