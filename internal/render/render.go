package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/stats"
)

const (
	colorReset  = "\033[0m"
	colorTitle  = "\033[1;34m" // bold blue
	colorAccent = "\033[1;32m" // bold green
	colorDim    = "\033[2m"
	colorBar    = "\033[36m" // cyan
	colorNeg    = "\033[31m"
	colorPos    = "\033[32m"
)

type Options struct {
	Width int  // wrap/bar width (0 = 80)
	Color bool // emit ANSI colors
}

func (o Options) width() int {
	if o.Width <= 0 {
		return 80
	}
	return o.Width
}

func (o Options) paint(color, s string) string {
	if !o.Color {
		return s
	}
	return color + s + colorReset
}

// SectionNames lists the report sections in display order. The TUI uses
// this as its navigation list.
func SectionNames() []string {
	return []string{
		"Overview",
		"Activity",
		"People",
		"Words & Emoji",
		"Phrases",
		"Sentiment",
		"Conversations",
		"Journey",
	}
}

// Report renders every section.
func Report(s *stats.Summary, opts Options) string {
	var b strings.Builder
	for i, name := range SectionNames() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Section(s, name, opts))
	}
	return b.String()
}

// Section renders one named section; unknown names render empty.
func Section(s *stats.Summary, name string, opts Options) string {
	switch name {
	case "Overview":
		return overview(s, opts)
	case "Activity":
		return activity(s, opts)
	case "People":
		return people(s, opts)
	case "Words & Emoji":
		return words(s, opts)
	case "Phrases":
		return phrases(s, opts)
	case "Sentiment":
		return sentimentSection(s, opts)
	case "Conversations":
		return conversationsSection(s, opts)
	case "Journey":
		return journey(s, opts)
	}
	return ""
}

func title(opts Options, text string) string {
	return opts.paint(colorTitle, "== "+text+" ==") + "\n"
}

func overview(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "Overview"))
	fmt.Fprintf(&b, "Messages:      %s\n", humanize.Comma(int64(s.TotalMessages)))
	fmt.Fprintf(&b, "Conversations: %s\n", humanize.Comma(int64(s.ConversationCount)))
	fmt.Fprintf(&b, "Deleted:       %d by you, %d by others\n", s.DeletedYou, s.DeletedOthers)
	fmt.Fprintf(&b, "Media:         %d\n", s.FunFacts.MediaMessages)
	ff := s.FunFacts
	if ff.BusiestDay.Day != "" {
		fmt.Fprintf(&b, "Busiest day:   %s (%s messages)\n", ff.BusiestDay.Day, humanize.Comma(int64(ff.BusiestDay.Count)))
	}
	if ff.LongestStreak.Days > 0 {
		fmt.Fprintf(&b, "Longest streak: %d days (%s to %s)\n", ff.LongestStreak.Days, ff.LongestStreak.Start, ff.LongestStreak.End)
	}
	fmt.Fprintf(&b, "Avg words/msg: %.1f\n", ff.AverageWords)
	return b.String()
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func activity(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "Activity"))

	b.WriteString(opts.paint(colorDim, "By weekday") + "\n")
	maxD := maxOf(s.Daily[:])
	for i, n := range s.Daily {
		b.WriteString(barLine(opts, weekdayNames[i], n, maxD, 8))
	}

	b.WriteString(opts.paint(colorDim, "By hour") + "\n")
	maxH := maxOf(s.Hourly[:])
	for i, n := range s.Hourly {
		if n == 0 {
			continue
		}
		b.WriteString(barLine(opts, fmt.Sprintf("%02d:00", i), n, maxH, 8))
	}
	return b.String()
}

func people(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "People"))
	for _, sh := range s.ShareOfSpeech {
		fmt.Fprintf(&b, "%s %s messages (%.1f%%)\n",
			pad(sh.Name, 16), humanize.Comma(int64(sh.Messages)), sh.Percent)
	}
	b.WriteString("\n")
	for _, ps := range s.PersonStats {
		fmt.Fprintf(&b, "%s %d words, %d unique, longest %d, avg %.1f",
			pad(ps.Name, 16), ps.TotalWords, ps.UniqueWords, ps.LongestMessageWords, ps.AverageWords)
		if len(ps.TopEmojis) > 0 {
			fmt.Fprintf(&b, "  %s", ps.TopEmojis[0].Label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func words(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "Words & Emoji"))
	b.WriteString(opts.paint(colorDim, "Top words (stop words removed)") + "\n")
	b.WriteString(countList(opts, s.TopWords))
	b.WriteString(opts.paint(colorDim, "Top emoji") + "\n")
	b.WriteString(countList(opts, s.TopEmojis))
	return b.String()
}

func phrases(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "Phrases"))
	for _, p := range s.SalientPhrases {
		fmt.Fprintf(&b, "%s %s(%d)%s\n", pad(p.Text, 32),
			ifColor(opts, colorDim), p.Count, ifColor(opts, colorReset))
	}
	return b.String()
}

func sentimentSection(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "Sentiment"))
	for _, so := range s.SentimentOverall {
		mood := opts.paint(colorDim, "neutral")
		switch {
		case so.Mean > 0.05:
			mood = opts.paint(colorPos, fmt.Sprintf("positive (%.2f)", so.Mean))
		case so.Mean < -0.05:
			mood = opts.paint(colorNeg, fmt.Sprintf("negative (%.2f)", so.Mean))
		}
		fmt.Fprintf(&b, "%s %s  +%d / %d / -%d\n", pad(so.Name, 16), mood, so.Pos, so.Neu, so.Neg)
	}
	return b.String()
}

func conversationsSection(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "Conversations"))
	fmt.Fprintf(&b, "%s conversations detected\n", humanize.Comma(int64(s.ConversationCount)))
	b.WriteString(opts.paint(colorDim, "Started by") + "\n")
	b.WriteString(countList(opts, s.ConversationStarters))
	return b.String()
}

func journey(s *stats.Summary, opts Options) string {
	var b strings.Builder
	b.WriteString(title(opts, "Journey"))
	if len(s.Journey.First) > 0 {
		b.WriteString(opts.paint(colorDim, "Where it began") + "\n")
		for _, e := range s.Journey.First {
			b.WriteString(excerptLine(opts, e))
		}
	}
	for _, m := range s.Journey.Moments {
		fmt.Fprintf(&b, "\n%s (%s)\n", opts.paint(colorAccent, m.Title), m.Date)
		b.WriteString(wrap(m.Description, opts.width()) + "\n")
		for _, e := range m.Messages {
			b.WriteString(excerptLine(opts, e))
		}
	}
	if len(s.Journey.Last) > 0 {
		b.WriteString("\n" + opts.paint(colorDim, "Most recently") + "\n")
		for _, e := range s.Journey.Last {
			b.WriteString(excerptLine(opts, e))
		}
	}
	return b.String()
}

func excerptLine(opts Options, e stats.Excerpt) string {
	sender := e.Sender
	if sender == "" {
		sender = "(system)"
	}
	line := fmt.Sprintf("  %s: %s", opts.paint(colorAccent, sender), strings.ReplaceAll(e.Body, "\n", " "))
	return wrap(line, opts.width()) + "\n"
}

func countList(opts Options, counts []stats.Count) string {
	var b strings.Builder
	max := 0
	if len(counts) > 0 {
		max = counts[0].Value
	}
	for _, c := range counts {
		b.WriteString(barLine(opts, c.Label, c.Value, max, 16))
	}
	return b.String()
}

// barLine renders "label ▇▇▇▇ count" with the label padded to a fixed
// display width.
func barLine(opts Options, label string, value, max, labelWidth int) string {
	bar := ""
	if max > 0 {
		n := value * 24 / max
		if n == 0 && value > 0 {
			n = 1
		}
		bar = strings.Repeat("▇", n)
	}
	return fmt.Sprintf("%s %s %s\n",
		pad(label, labelWidth),
		opts.paint(colorBar, bar),
		opts.paint(colorDim, humanize.Comma(int64(value))))
}

// pad right-pads a string to the given display width, truncating if it
// is too wide. Uses runewidth so emoji and CJK labels line up.
func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// wrap breaks a line into width-sized pieces on rune boundaries. ANSI
// sequences are rare in our own output, so a simple display-width walk
// is enough.
func wrap(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	var lines []string
	var cur strings.Builder
	w := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if w > 0 && w+ww+1 > width {
			lines = append(lines, cur.String())
			cur.Reset()
			w = 0
		}
		if w > 0 {
			cur.WriteString(" ")
			w++
		}
		cur.WriteString(word)
		w += ww
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n")
}

func maxOf(xs []int) int {
	max := 0
	for _, v := range xs {
		if v > max {
			max = v
		}
	}
	return max
}

func ifColor(opts Options, code string) string {
	if !opts.Color {
		return ""
	}
	return code
}
