package fragment

import "github.com/stpnv0/BookingWebhook/internal/domain"

// Platform tags follow Dialogflow ES message platform names.
type Platform string

const (
	PlatformGeneric   Platform = "PLATFORM_UNSPECIFIED"
	PlatformSlack     Platform = "SLACK"
	PlatformTelegram  Platform = "TELEGRAM"
	PlatformMessenger Platform = "DIALOGFLOW_MESSENGER"
)

// Facts is the canonical outcome every fragment is projected from.
type Facts struct {
	BookingID string
	Activity  string
	Location  string
	Tutor     string
	Date      string
}

func FactsOf(b domain.BookingRequest) Facts {
	return Facts{
		BookingID: b.ID,
		Activity:  b.Activity,
		Location:  b.Location,
		Tutor:     b.TutorLabel(),
		Date:      b.Date,
	}
}

func (f Facts) BookingFacts() Facts { return f }

// Fragment is one platform rendering of an outcome. The set of
// implementations is closed: GenericText, ChatClientCard, MobileMessage and
// WidgetRichContent.
type Fragment interface {
	Platform() Platform
	BookingFacts() Facts
	fragment()
}

// Response is what the dispatcher hands back to the transport layer.
// Text is always set so minimal clients render something.
type Response struct {
	Text      string
	Fragments []Fragment
}

func TextResponse(text string) Response {
	return Response{
		Text:      text,
		Fragments: []Fragment{GenericText{Text: text}},
	}
}

// Find returns the first fragment of type T.
func Find[T Fragment](fragments []Fragment) (T, bool) {
	for _, f := range fragments {
		if v, ok := f.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
