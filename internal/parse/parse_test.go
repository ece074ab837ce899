package parse

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseBracketFormat(t *testing.T) {
	raw := strings.Join([]string{
		"[3/7/24, 9:15:42 PM] Alice: hey there",
		"[3/7/24, 9:16:01 PM] Bob: hi!",
	}, "\n")

	msgs, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Sender != "Alice" || msgs[0].Body != "hey there" {
		t.Errorf("first message = %q/%q", msgs[0].Sender, msgs[0].Body)
	}
	want := time.Date(2024, 3, 7, 21, 15, 42, 0, time.UTC)
	if !msgs[0].Time.Equal(want) {
		t.Errorf("timestamp = %v, want %v", msgs[0].Time, want)
	}
}

func TestParseDashedFormat(t *testing.T) {
	raw := strings.Join([]string{
		"25/12/2023, 21:05 - Alice: merry christmas",
		"25/12/2023, 21:06 - Bob: you too",
	}, "\n")

	msgs, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	// 25 can only be a day, so the day-first layout must win the vote.
	want := time.Date(2023, 12, 25, 21, 5, 0, 0, time.UTC)
	if !msgs[0].Time.Equal(want) {
		t.Errorf("timestamp = %v, want %v", msgs[0].Time, want)
	}
}

func TestParseDateVote(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			// 13 in the first position of the second line rules out
			// month-first for the whole file.
			name: "day first committed by unambiguous line",
			raw: "1/2/24, 10:00 - A: one\n" +
				"13/2/24, 11:00 - A: two",
			want: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			// Every line parses under both layouts: month-first wins the tie.
			name: "ambiguous file commits month-first",
			raw:  "1/2/24, 10:00 - A: one\n2/3/24, 11:00 - A: two",
			want: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "dotted european date",
			raw:  "13.02.2024, 10:00 - A: one",
			want: time.Date(2024, 2, 13, 10, 0, 0, 0, time.UTC),
		},
		{
			// Dotted dates are day-first even when both fields fit a
			// month; the month-first tie-break applies to slashes only.
			name: "ambiguous dotted date stays day-first",
			raw:  "01.02.2024, 10:00 - A: hallo",
			want: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !msgs[0].Time.Equal(tt.want) {
				t.Errorf("timestamp = %v, want %v", msgs[0].Time, tt.want)
			}
		})
	}
}

func TestParseContinuationLines(t *testing.T) {
	raw := strings.Join([]string{
		"1/2/24, 10:00 - Alice: first line",
		"second line",
		"third line",
		"1/2/24, 10:05 - Bob: reply",
	}, "\n")

	msgs, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	want := "first line\nsecond line\nthird line"
	if msgs[0].Body != want {
		t.Errorf("body = %q, want %q", msgs[0].Body, want)
	}
}

func TestParseTrailingNewline(t *testing.T) {
	// Exports end with a newline; it must not become an empty
	// continuation line on the last message.
	msgs, err := Parse("1/2/24, 10:00 - Alice: hello\n1/2/24, 10:01 - Bob: bye\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := msgs[len(msgs)-1].Body; got != "bye" {
		t.Errorf("last body = %q, want %q", got, "bye")
	}

	msgs, err = Parse("1/2/24, 10:00 - Alice: hello\r\n1/2/24, 10:01 - Bob: bye\r\n")
	if err != nil {
		t.Fatalf("Parse CRLF: %v", err)
	}
	if got := msgs[len(msgs)-1].Body; got != "bye" {
		t.Errorf("last body (CRLF) = %q, want %q", got, "bye")
	}
}

func TestParseSystemAndDeleted(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		kind   MessageKind
		sender string
	}{
		{
			name: "encryption notice",
			line: "1/2/24, 10:00 - Messages and calls are end-to-end encrypted. No one outside of this chat can read them.",
			kind: KindSystem,
		},
		{
			name: "group join",
			line: "1/2/24, 10:00 - Carol joined using this group's invite link",
			kind: KindSystem,
		},
		{
			name:   "deleted by you",
			line:   "1/2/24, 10:00 - Alice: You deleted this message",
			kind:   KindDeletedByYou,
			sender: "Alice",
		},
		{
			name:   "deleted by author",
			line:   "1/2/24, 10:00 - Bob: This message was deleted.",
			kind:   KindDeletedByOther,
			sender: "Bob",
		},
		{
			name:   "normal",
			line:   "1/2/24, 10:00 - Bob: hello",
			kind:   KindNormal,
			sender: "Bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if msgs[0].Kind != tt.kind {
				t.Errorf("kind = %v, want %v", msgs[0].Kind, tt.kind)
			}
			if msgs[0].Sender != tt.sender {
				t.Errorf("sender = %q, want %q", msgs[0].Sender, tt.sender)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty", raw: "", want: ErrEmptyInput},
		{name: "whitespace", raw: "  \n\t\n", want: ErrEmptyInput},
		{name: "no timestamps", raw: "just some\nrandom text\nwith no headers", want: ErrUnrecognizedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseOrdering(t *testing.T) {
	// Out-of-order input must come back sorted, equal stamps in input order.
	raw := strings.Join([]string{
		"2/2/24, 10:00 - A: later",
		"1/2/24, 10:00 - A: earlier",
		"1/2/24, 10:00 - B: same stamp",
	}, "\n")

	msgs, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msgs[0].Body != "earlier" || msgs[1].Body != "same stamp" || msgs[2].Body != "later" {
		t.Errorf("unexpected order: %q, %q, %q", msgs[0].Body, msgs[1].Body, msgs[2].Body)
	}
}

func TestIsMediaPlaceholder(t *testing.T) {
	if !IsMediaPlaceholder("<Media omitted>") {
		t.Error("expected <Media omitted> to be a placeholder")
	}
	if !IsMediaPlaceholder("image omitted") {
		t.Error("expected image omitted to be a placeholder")
	}
	if IsMediaPlaceholder("I omitted the image") {
		t.Error("plain text misdetected as placeholder")
	}
}
