package intent

import (
	"strings"
	"unicode"

	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/params"
)

type Operation int

const (
	Unhandled Operation = iota
	Book
	Cancel
)

func (o Operation) String() string {
	switch o {
	case Book:
		return "book"
	case Cancel:
		return "cancel"
	default:
		return "unhandled"
	}
}

const (
	bookPrefix  = "book_"
	CancelEvent = "cancel_booking"
)

// Trigger is what started a webhook call: an NLU intent or an inline UI event.
type Trigger interface {
	trigger()
}

type IntentTrigger struct {
	DisplayName string
}

type EventTrigger struct {
	Name      string
	BookingID string
}

func (IntentTrigger) trigger() {}
func (EventTrigger) trigger()  {}

// Resolve picks the inline event channel over the intent when one is present.
func Resolve(displayName string, ev *domain.InlineEvent) Trigger {
	if ev != nil && ev.Name != "" {
		return EventTrigger{
			Name:      Canonical(ev.Name),
			BookingID: params.BookingID(ev.Parameters),
		}
	}
	return IntentTrigger{DisplayName: displayName}
}

// Classify maps a trigger onto exactly one operation.
func Classify(t Trigger) Operation {
	switch v := t.(type) {
	case EventTrigger:
		if v.Name == CancelEvent {
			return Cancel
		}
		return Unhandled
	case IntentTrigger:
		name := Canonical(v.DisplayName)
		switch {
		case strings.HasPrefix(name, bookPrefix):
			return Book
		case name == CancelEvent:
			return Cancel
		}
	}
	return Unhandled
}

// ClassifyRequest classifies an intent name, letting a cancel event take
// priority. Any other event name falls through to the intent.
func ClassifyRequest(displayName string, ev *domain.InlineEvent) Operation {
	if op := Classify(Resolve(displayName, ev)); op != Unhandled {
		return op
	}
	return Classify(IntentTrigger{DisplayName: displayName})
}

// Canonical lower-cases s and collapses runs of whitespace and punctuation
// into a single underscore.
func Canonical(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
			continue
		}
		sep = true
	}
	return b.String()
}
