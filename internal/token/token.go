// Package token normalizes message bodies into word and emoji tokens.
package token

import (
	"strings"
	"unicode"
)

// Words splits a body into lowercased word tokens. A token is a maximal
// run of letters and digits; apostrophes inside a word are kept so
// "don't" survives as one token.
func Words(body string) []string {
	var tokens []string
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, strings.Trim(sb.String(), "'"))
		}
		sb.Reset()
	}
	for _, r := range body {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(unicode.ToLower(r))
		case (r == '\'' || r == '’') && sb.Len() > 0:
			sb.WriteRune('\'')
		default:
			flush()
		}
	}
	flush()

	out := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// IsStopWord reports whether w is in the fixed stop-word set.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// WithoutStopWords returns the tokens that are not stop words.
func WithoutStopWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsStopWord(t) {
			out = append(out, t)
		}
	}
	return out
}

// stopWords is the fixed set of common function words filtered out of
// the "no stop" statistic variants. Loaded once, never mutated.
var stopWords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "all", "am", "an", "and",
		"any", "are", "aren't", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"can't", "cannot", "could", "did", "didn't", "do", "does",
		"doesn't", "doing", "don't", "down", "during", "each", "few",
		"for", "from", "further", "had", "has", "hasn't", "have",
		"haven't", "having", "he", "her", "here", "hers", "herself",
		"him", "himself", "his", "how", "i", "i'm", "i'll", "i've", "if",
		"in", "into", "is", "isn't", "it", "it's", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "ok", "okay", "on", "once", "only", "or",
		"other", "our", "ours", "ourselves", "out", "over", "own", "so",
		"same", "she", "should", "some", "such", "than", "that", "that's",
		"the", "their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too", "under",
		"until", "up", "very", "was", "wasn't", "we", "we're", "were",
		"what", "when", "where", "which", "while", "who", "whom", "why",
		"will", "with", "won't", "would", "you", "you're", "your",
		"yours", "yourself", "yeah", "yes", "u", "im", "dont",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
