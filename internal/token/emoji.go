package token

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// emojiRanges covers the Unicode blocks emoji are drawn from. A grapheme
// cluster whose first scalar lands in one of these is treated as one
// emoji token, so ZWJ sequences, skin-tone modifiers, and flags stay
// intact.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x203c, Hi: 0x203c, Stride: 1}, // double exclamation
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2600, Hi: 0x26ff, Stride: 1}, // misc symbols
		{Lo: 0x2700, Hi: 0x27bf, Stride: 1}, // dingbats
		{Lo: 0x2b00, Hi: 0x2bff, Stride: 1}, // arrows, stars
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f1e6, Hi: 0x1f1ff, Stride: 1}, // regional indicators (flags)
		{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1}, // symbols & pictographs
		{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1}, // emoticons
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1}, // transport & map
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1}, // supplemental
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1}, // extended-A
	},
}

// keycap combiner: digits followed by U+20E3 render as emoji.
const keycap = '⃣'

// Emojis extracts emoji tokens from a body, one token per grapheme
// cluster, preserving multi-codepoint sequences.
func Emojis(body string) []string {
	var out []string
	gr := uniseg.NewGraphemes(body)
	for gr.Next() {
		runes := gr.Runes()
		if isEmojiCluster(runes) {
			out = append(out, gr.Str())
		}
	}
	return out
}

func isEmojiCluster(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	if unicode.Is(emojiRanges, runes[0]) {
		return true
	}
	for _, r := range runes[1:] {
		if r == keycap {
			return true
		}
	}
	return false
}
