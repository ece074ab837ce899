// Package stats turns a raw WhatsApp export into a Summary: message
// counts, time-bucketed activity, per-person breakdowns, sentiment
// trends, salient vocabulary, and curated highlight moments.
package stats

import "errors"

// ErrInvariant means a defensive reconciliation check failed after
// aggregation. It indicates a bug, never bad input.
var ErrInvariant = errors.New("stats: internal invariant violation")

// Count is a labeled non-negative tally, used for every ranked list.
// Ranked lists are sorted by value descending with ties broken by first
// occurrence in the input, so output is identical across runs.
type Count struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DayCount is one calendar day's message total. Days are "2006-01-02".
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Share is one sender's slice of the total message volume.
type Share struct {
	Name     string  `json:"name"`
	Messages int     `json:"messages"`
	Percent  float64 `json:"percent"`
}

// PersonBuckets holds one sender's activity histograms. Hour 0-23,
// weekday 0 = Sunday, month 0 = January. Each counted message lands in
// exactly one bin per dimension, so the three sums always equal Messages.
type PersonBuckets struct {
	Name     string  `json:"name"`
	Messages int     `json:"messages"`
	Hourly   [24]int `json:"hourly"`
	Daily    [7]int  `json:"daily"`
	Monthly  [12]int `json:"monthly"`
}

// PersonStat holds one sender's word and emoji statistics.
type PersonStat struct {
	Name                string  `json:"name"`
	TotalWords          int     `json:"total_words"`
	UniqueWords         int     `json:"unique_words"`
	LongestMessageWords int     `json:"longest_message_words"`
	AverageWords        float64 `json:"average_words_per_message"`
	TopEmojis           []Count `json:"top_emojis"`
	Color               string  `json:"color,omitempty"` // display hint, assigned by activity rank
}

// SentimentDay aggregates one sender's sentiment on one day.
// Pos+Neu+Neg equals the sentiment-eligible message count for that pair;
// an empty bucket reports mean 0, never NaN.
type SentimentDay struct {
	Name string  `json:"name"`
	Day  string  `json:"day"`
	Mean float64 `json:"mean"`
	Pos  int     `json:"pos"`
	Neu  int     `json:"neu"`
	Neg  int     `json:"neg"`
}

// SentimentOverall aggregates one sender's sentiment across the history.
type SentimentOverall struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
	Pos  int     `json:"pos"`
	Neu  int     `json:"neu"`
	Neg  int     `json:"neg"`
}

// Phrase is a scored multi-word n-gram.
type Phrase struct {
	Text     string  `json:"text"`
	Count    int     `json:"count"`
	Salience float64 `json:"salience"`
}

// Streak is a run of calendar-consecutive days with activity.
type Streak struct {
	Days  int    `json:"days"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// FunFacts collects the single-value curiosities the presentation layer
// shows as callouts.
type FunFacts struct {
	BusiestDay        DayCount `json:"busiest_day"`
	QuietestDay       DayCount `json:"quietest_day"`
	LongestStreak     Streak   `json:"longest_streak"`
	MostActiveHour    int      `json:"most_active_hour"`
	MostActiveWeekday string   `json:"most_active_weekday"`
	AverageWords      float64  `json:"average_words_per_message"`
	TotalEmojis       int      `json:"total_emojis"`
	MediaMessages     int      `json:"media_messages"`
	SystemEvents      int      `json:"system_events"`
}

// Excerpt is a short rendering of one message for narrative display.
type Excerpt struct {
	Time   string `json:"time"` // RFC 3339
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// Moment is one curated highlight: a sentiment or volume outlier with a
// small excerpt around it.
type Moment struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Messages    []Excerpt `json:"messages"`
	Sentiment   float64   `json:"sentiment_score"`
}

// Journey is the curated narrative subset of the summary.
type Journey struct {
	First   []Excerpt `json:"first"`
	Last    []Excerpt `json:"last"`
	Moments []Moment  `json:"moments"`
}

// Summary is the root aggregate. It is built in one pass over the parsed
// message list and immutable once returned; every cross-field count
// reconciles (total messages equal the sum of per-person bucket totals,
// conversation count equals the sum of starter counts, and so on).
type Summary struct {
	TotalMessages int        `json:"total_messages"`
	BySender      []Count    `json:"by_sender"`
	Daily         [7]int     `json:"daily"`
	Hourly        [24]int    `json:"hourly"`
	Monthly       [12]int    `json:"monthly"`
	Timeline      []DayCount `json:"timeline"`
	Weekly        []Count    `json:"weekly"`

	// The plain word lists are stop-word filtered; the NoStop variants
	// skip the filtering and keep function words.
	TopEmojis       []Count `json:"top_emojis"`
	TopWords        []Count `json:"top_words"`
	TopWordsNoStop  []Count `json:"top_words_no_stop"`
	WordCloud       []Count `json:"word_cloud"`
	WordCloudNoStop []Count `json:"word_cloud_no_stop"`
	EmojiCloud      []Count `json:"emoji_cloud"`

	SalientPhrases         []Phrase           `json:"salient_phrases"`
	TopPhrases             []Count            `json:"top_phrases"`
	TopPhrasesNoStop       []Count            `json:"top_phrases_no_stop"`
	PerPersonPhrases       map[string][]Count `json:"per_person_phrases"`
	PerPersonPhrasesNoStop map[string][]Count `json:"per_person_phrases_no_stop"`

	DeletedYou    int `json:"deleted_you"`
	DeletedOthers int `json:"deleted_others"`

	ShareOfSpeech   []Share               `json:"share_of_speech"`
	BucketsByPerson []PersonBuckets       `json:"buckets_by_person"`
	PersonStats     []PersonStat          `json:"person_stats"`
	PerPersonDaily  map[string][]DayCount `json:"per_person_daily"`

	SentimentByDay   []SentimentDay     `json:"sentiment_by_day"`
	SentimentOverall []SentimentOverall `json:"sentiment_overall"`

	ConversationStarters []Count `json:"conversation_starters"`
	ConversationCount    int     `json:"conversation_count"`

	FunFacts FunFacts `json:"fun_facts"`
	Journey  Journey  `json:"journey"`
}
