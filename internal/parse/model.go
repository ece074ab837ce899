package parse

import (
	"errors"
	"time"
)

// MessageKind classifies a parsed message.
type MessageKind int

const (
	KindNormal MessageKind = iota
	KindSystem                 // joins, leaves, encryption notices, calls
	KindDeletedByYou           // "You deleted this message"
	KindDeletedByOther         // "This message was deleted"
)

func (k MessageKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindSystem:
		return "system"
	case KindDeletedByYou:
		return "deleted_you"
	case KindDeletedByOther:
		return "deleted_other"
	default:
		return "unknown"
	}
}

// Message is one logical message from the export: a timestamped header
// line plus any continuation lines. Created once by the parser and
// treated as read-only by everything downstream.
type Message struct {
	Time   time.Time
	Sender string // empty for system events
	Body   string
	Kind   MessageKind
	Line   int // line number of the header line in the input
}

var (
	// ErrEmptyInput means the input was blank or whitespace-only.
	ErrEmptyInput = errors.New("parse: empty input")

	// ErrUnrecognizedFormat means no line matched any supported timestamp pattern.
	ErrUnrecognizedFormat = errors.New("parse: no recognizable timestamped lines")
)
