package sentiment

import (
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		emojis []string
		sign   int // expected Classify result
	}{
		{name: "positive", body: "this is great i love it", sign: 1},
		{name: "negative", body: "this is awful i hate it", sign: -1},
		{name: "negated positive flips", body: "not good at all", sign: -1},
		{name: "negated negative flips", body: "that was not bad", sign: 1},
		{name: "intensifier keeps sign", body: "really really awesome", sign: 1},
		{name: "no lexicon words is neutral", body: "see you at the station tomorrow", sign: 0},
		{name: "empty is neutral", body: "", sign: 0},
		{name: "negation expires outside window", body: "no one came but the party was great", sign: 1},
		{name: "emoji only positive", emojis: []string{"😂"}, sign: 1},
		{name: "emoji only negative", emojis: []string{"😭", "💔"}, sign: -1},
		{name: "unlisted emoji is neutral", emojis: []string{"🍕"}, sign: 0},
		{name: "emoji ignores negation", body: "not", emojis: []string{"😭"}, sign: -1},
		{name: "emojis tip neutral words", body: "see you tomorrow", emojis: []string{"❤️"}, sign: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(strings.Fields(tt.body), tt.emojis)
			if score < -1 || score > 1 {
				t.Fatalf("score %v out of [-1,1]", score)
			}
			if got := Classify(score); got != tt.sign {
				t.Errorf("Classify(Score(%q, %v)) = %d (score %v), want %d", tt.body, tt.emojis, got, score, tt.sign)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	tokens := strings.Fields("really love this but also kinda worried about the problems")
	emojis := []string{"😂", "💔"}
	a := Score(tokens, emojis)
	b := Score(tokens, emojis)
	if a != b {
		t.Errorf("Score not deterministic: %v vs %v", a, b)
	}
}
