package parse

import (
	"sort"
	"strings"
	"time"
)

// systemPhrases mark event lines WhatsApp writes without a real sender:
// group membership changes, encryption notices, calls, settings changes.
// Matched case-insensitively against the text after the timestamp.
var systemPhrases = []string{
	"messages and calls are end-to-end encrypted",
	"created group",
	"created this group",
	"added you",
	"you were added",
	"joined using this group's invite link",
	"left the group",
	"removed you",
	"changed the subject",
	"changed this group's icon",
	"changed the group description",
	"changed their phone number",
	"missed voice call",
	"missed video call",
	"security code changed",
	"turned on disappearing messages",
	"turned off disappearing messages",
}

// mediaPlaceholders are the bodies WhatsApp substitutes for attachments
// when exporting without media. These messages count toward activity but
// their bodies carry no real words.
var mediaPlaceholders = []string{
	"<media omitted>",
	"image omitted",
	"video omitted",
	"audio omitted",
	"sticker omitted",
	"gif omitted",
	"document omitted",
	"contact card omitted",
}

// IsMediaPlaceholder reports whether a body is an export-time stand-in
// for an attachment rather than typed text.
func IsMediaPlaceholder(body string) bool {
	b := strings.ToLower(strings.TrimSpace(body))
	for _, p := range mediaPlaceholders {
		if b == p {
			return true
		}
	}
	return false
}

func isSystemText(rest string) bool {
	lower := strings.ToLower(rest)
	for _, p := range systemPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func deletionKind(body string) (MessageKind, bool) {
	b := strings.ToLower(strings.TrimSpace(body))
	b = strings.TrimSuffix(b, ".")
	switch b {
	case "you deleted this message":
		return KindDeletedByYou, true
	case "this message was deleted":
		return KindDeletedByOther, true
	}
	return KindNormal, false
}

// rawMessage is a reassembled logical message before the date layout is
// committed: the split header plus any continuation lines.
type rawMessage struct {
	hdr  header
	cont []string
	line int
}

// Parse turns a raw export into an ordered list of logical messages.
//
// A line that matches a recognized header starts a new message; any
// other line is a continuation of the previous message's body. The date
// layout is committed by voting over a sample of header lines, then
// applied uniformly; header lines whose date fails the committed layout
// are recovered as continuation text rather than aborting the parse.
func Parse(raw string) ([]Message, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	// A file's final newline is a terminator, not an empty continuation
	// line on the last message.
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")

	var raws []*rawMessage
	for lineNum, line := range strings.Split(raw, "\n") {
		norm := normalizeLine(line)
		if h, ok := splitHeader(norm); ok {
			raws = append(raws, &rawMessage{hdr: h, line: lineNum + 1})
			continue
		}
		if len(raws) == 0 {
			continue // leading garbage before the first header
		}
		last := raws[len(raws)-1]
		last.cont = append(last.cont, norm)
	}
	if len(raws) == 0 {
		return nil, ErrUnrecognizedFormat
	}

	headers := make([]header, len(raws))
	for i, r := range raws {
		headers[i] = r.hdr
	}
	dateLayout := voteDateLayout(headers)
	if dateLayout == "" {
		return nil, ErrUnrecognizedFormat
	}

	msgs := make([]Message, 0, len(raws))
	for _, r := range raws {
		ts, ok := parseStamp(r.hdr, dateLayout)
		if !ok {
			// Minority-format line: fold it into the previous message
			// instead of scrambling the stream with a bad timestamp.
			if len(msgs) > 0 {
				prev := &msgs[len(msgs)-1]
				prev.Body += "\n" + flattenRaw(r)
			}
			continue
		}
		msgs = append(msgs, buildMessage(r, ts))
	}
	if len(msgs) == 0 {
		return nil, ErrUnrecognizedFormat
	}

	// Chronological order, input order breaking ties.
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Time.Before(msgs[j].Time)
	})
	return msgs, nil
}

// buildMessage classifies a reassembled message: sender split on the
// first ": ", system detection for senderless notices, deletion markers.
func buildMessage(r *rawMessage, ts time.Time) Message {
	body := r.hdr.rest
	if len(r.cont) > 0 {
		body += "\n" + strings.Join(r.cont, "\n")
	}

	msg := Message{Time: ts, Line: r.line}

	idx := strings.Index(r.hdr.rest, ": ")
	if idx < 0 || isSystemText(r.hdr.rest) {
		msg.Kind = KindSystem
		msg.Body = body
		return msg
	}

	msg.Sender = strings.TrimSpace(r.hdr.rest[:idx])
	msg.Body = strings.TrimPrefix(body, r.hdr.rest[:idx+2])
	if kind, ok := deletionKind(msg.Body); ok {
		msg.Kind = kind
		return msg
	}
	msg.Kind = KindNormal
	return msg
}

// flattenRaw rebuilds the text of an unparsable header line and its
// continuations for recovery as body text.
func flattenRaw(r *rawMessage) string {
	parts := append([]string{r.hdr.dateStr + ", " + r.hdr.timeStr + " " + r.hdr.rest}, r.cont...)
	return strings.Join(parts, "\n")
}
