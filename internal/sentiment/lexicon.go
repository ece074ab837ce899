// Package sentiment assigns a polarity score in [-1, 1] to tokenized
// messages using a fixed word-polarity lexicon with negation and
// intensity handling.
package sentiment

// lexicon maps words to raw polarity on a -5..+5 scale (AFINN-style).
// Loaded once at init, never mutated.
var lexicon = map[string]float64{
	// positive
	"good": 3, "great": 3, "nice": 3, "love": 3, "loved": 3, "loves": 3,
	"awesome": 4, "amazing": 4, "fantastic": 4, "wonderful": 4,
	"excellent": 3, "perfect": 3, "best": 3, "happy": 3, "glad": 3,
	"fun": 4, "funny": 4, "lol": 3, "haha": 3, "hahaha": 3, "lmao": 4,
	"cool": 1, "win": 4, "won": 3, "wins": 4, "winner": 4,
	"beautiful": 3, "cute": 2, "sweet": 2, "thanks": 2, "thank": 2,
	"congrats": 2, "congratulations": 2, "excited": 3, "exciting": 3,
	"yay": 3, "wow": 4, "like": 2, "liked": 2, "likes": 2, "enjoy": 2,
	"enjoyed": 2, "proud": 2, "hope": 2, "hopefully": 2, "better": 2,
	"super": 3, "brilliant": 4, "delicious": 3, "miss": 2, "missed": 2,
	"hilarious": 2, "interesting": 2, "welcome": 2, "safe": 1,
	"celebrate": 3, "celebration": 3, "favorite": 2, "favourite": 2,
	"pleased": 3, "relieved": 2, "blessed": 3, "adorable": 3,

	// negative
	"bad": -3, "terrible": -3, "awful": -3, "horrible": -3, "worst": -3,
	"hate": -3, "hated": -3, "hates": -3, "sad": -2, "sucks": -3,
	"suck": -3, "angry": -3, "mad": -3, "annoyed": -2, "annoying": -2,
	"upset": -2, "sorry": -1, "sick": -2, "tired": -2, "stress": -1,
	"stressed": -2, "stressful": -2, "worried": -3, "worry": -3,
	"scared": -2, "afraid": -2, "cry": -1, "crying": -2, "cried": -2,
	"hurt": -2, "hurts": -2, "pain": -2, "painful": -2, "lonely": -2,
	"lost": -3, "lose": -3, "losing": -3, "fail": -2, "failed": -2,
	"failure": -2, "broke": -1, "broken": -1, "problem": -2,
	"problems": -2, "wrong": -2, "ugh": -1, "wtf": -4, "damn": -4,
	"hell": -4, "stupid": -2, "idiot": -3, "boring": -3, "bored": -2,
	"disappointed": -2, "disappointing": -2, "depressed": -2,
	"miserable": -3, "disaster": -2, "die": -3, "died": -3, "dead": -3,
	"fight": -1, "fighting": -1, "argue": -1, "arguing": -2,
	"jealous": -2, "guilty": -3, "ashamed": -2, "embarrassed": -2,
}

// negators flip the sign of the next scored word.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nobody": {},
	"nothing": {}, "don't": {}, "dont": {}, "doesn't": {}, "doesnt": {},
	"didn't": {}, "didnt": {}, "can't": {}, "cant": {}, "cannot": {},
	"won't": {}, "wont": {}, "isn't": {}, "isnt": {}, "aren't": {},
	"arent": {}, "wasn't": {}, "wasnt": {}, "ain't": {}, "aint": {},
}

// modifiers scale the magnitude of the next scored word.
var modifiers = map[string]float64{
	"very": 1.5, "really": 1.5, "so": 1.3, "extremely": 1.8,
	"totally": 1.5, "absolutely": 1.8, "super": 1.5, "incredibly": 1.8,
	"slightly": 0.5, "somewhat": 0.5, "kinda": 0.5, "kind": 0.5,
	"barely": 0.5, "hardly": 0.5, "bit": 0.7, "little": 0.7,
}

// emojiPolarity scores the unambiguous smileys and gestures on the same
// -5..+5 scale. Emojis ignore negation and modifiers: "not 😭" is still
// a sad message.
var emojiPolarity = map[string]float64{
	// positive
	"😀": 3, "😃": 3, "😄": 3, "😁": 3, "😆": 3, "😍": 4, "😊": 3,
	"😂": 3, "🤣": 3, "🥰": 4, "😘": 3, "🤗": 3, "🎉": 3, "👍": 3,
	"🙏": 2, "❤️": 4, "💕": 4, "💖": 4, "✨": 2,

	// negative
	"😢": -3, "😭": -3, "😡": -4, "😠": -3, "👎": -3, "💔": -4,
	"😞": -3, "😔": -3, "🙁": -2, "☹️": -2, "😤": -2, "😒": -2,
}
