package stats

import "time"

// conversationGap is the inactivity threshold that splits the stream
// into conversations.
const conversationGap = 4 * time.Hour

// conversations walks the counted messages and returns the starter
// ranking plus the number of detected conversations. A conversation
// begins at the start of the stream or after a gap exceeding the
// threshold; its starter is the sender of its first message.
func conversations(c *corpus) ([]Count, int) {
	starters := newCounter()
	count := 0

	var prev time.Time
	for i := range c.msgs {
		if !c.counted(i) {
			continue
		}
		m := &c.msgs[i]
		if count == 0 || m.Time.Sub(prev) > conversationGap {
			count++
			starters.add(m.Sender)
		}
		prev = m.Time
	}
	return starters.ranked(0), count
}
