package sentiment

// Classification thresholds: a message score above Epsilon is positive,
// below -Epsilon negative, otherwise neutral.
const Epsilon = 0.05

// negationWindow is how many tokens a negator reaches forward.
const negationWindow = 3

// Score computes the polarity of one tokenized message in [-1, 1] from
// its word and emoji tokens. A negator flips the sign of the next
// scored word within its window; a modifier scales its magnitude.
// Emojis score flat from the polarity table. Messages with no lexicon
// hits score 0.
func Score(tokens, emojis []string) float64 {
	var sum float64
	hits := 0

	negateLeft := 0 // tokens remaining under an active negation
	scale := 1.0

	for _, tok := range tokens {
		if _, ok := negators[tok]; ok {
			negateLeft = negationWindow
			continue
		}
		if m, ok := modifiers[tok]; ok {
			scale *= m
			if negateLeft > 0 {
				negateLeft--
			}
			continue
		}

		if raw, ok := lexicon[tok]; ok {
			v := raw / 5 * scale
			if negateLeft > 0 {
				v = -v
			}
			sum += clamp(v)
			hits++
		}
		scale = 1.0
		if negateLeft > 0 {
			negateLeft--
		}
	}

	for _, e := range emojis {
		if raw, ok := emojiPolarity[e]; ok {
			sum += clamp(raw / 5)
			hits++
		}
	}

	if hits == 0 {
		return 0
	}
	return clamp(sum / float64(hits))
}

// Classify buckets a score into +1 (positive), 0 (neutral), -1 (negative).
func Classify(score float64) int {
	switch {
	case score > Epsilon:
		return 1
	case score < -Epsilon:
		return -1
	default:
		return 0
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
