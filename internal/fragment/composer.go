package fragment

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/intent"
)

type Kind int

const (
	Created Kind = iota
	Cancelled
	CancelFailed
	CancelNotFound
)

type Outcome struct {
	Kind         Kind
	Booking      domain.BookingRequest
	Cancellation domain.CancellationRequest
}

type Options struct {
	ImageURL     string
	ViewURL      string
	LanguageCode string
}

const (
	viewLabel       = "View Booking"
	cancelLabel     = "Cancel Booking"
	confirmedAlt    = "Booking confirmed"
	cancelActionID  = intent.CancelEvent
	defaultLanguage = "en"
)

// Composer projects one outcome onto every supported surface.
type Composer struct {
	opts Options
}

func NewComposer(opts Options) *Composer {
	if opts.LanguageCode == "" {
		opts.LanguageCode = defaultLanguage
	}
	return &Composer{opts: opts}
}

// Compose returns the fragments for an outcome. The plain-text fragment is
// always last and always present.
func (c *Composer) Compose(o Outcome) []Fragment {
	switch o.Kind {
	case Created:
		f := FactsOf(o.Booking)
		return []Fragment{
			c.slackCard(f),
			c.richContent(f),
			c.telegramMessage(f),
			GenericText{Facts: f, Text: ConfirmationText(f)},
		}
	case Cancelled:
		id := o.Cancellation.BookingID
		return []Fragment{GenericText{
			Facts: Facts{BookingID: id},
			Text:  fmt.Sprintf("❌ Booking with ID %s has been cancelled.", id),
		}}
	case CancelNotFound:
		id := o.Cancellation.BookingID
		return []Fragment{GenericText{
			Facts: Facts{BookingID: id},
			Text:  fmt.Sprintf("No booking found with ID %s. It may already be cancelled.", id),
		}}
	default:
		return []Fragment{GenericText{
			Facts: Facts{BookingID: o.Cancellation.BookingID},
			Text:  "We couldn’t cancel your booking. Please try again.",
		}}
	}
}

// ConfirmationText is the single-line summary shared by every surface.
func ConfirmationText(f Facts) string {
	return fmt.Sprintf("✅ Your %s booking in %s is confirmed. Tutor: %s. Date: %s. Booking ID: %s",
		f.Activity, f.Location, f.Tutor, f.Date, f.BookingID)
}

func headline(f Facts) string {
	return fmt.Sprintf("Booking Confirmed: %s", f.Activity)
}

func detailLines(f Facts) []string {
	return []string{
		"Location: " + f.Location,
		"Tutor: " + f.Tutor,
		"Date: " + f.Date,
		"Booking ID: " + f.BookingID,
	}
}

func (c *Composer) slackCard(f Facts) ChatClientCard {
	summary := slack.NewTextBlockObject(slack.MarkdownType,
		fmt.Sprintf("✅ *%s*\n%s", headline(f), strings.Join(detailLines(f), "\n")),
		false, false)

	view := slack.NewButtonBlockElement("view_booking", "", slack.NewTextBlockObject(slack.PlainTextType, viewLabel, false, false))
	view.URL = c.opts.ViewURL

	cancel := slack.NewButtonBlockElement(cancelActionID, f.BookingID, slack.NewTextBlockObject(slack.PlainTextType, cancelLabel, false, false))
	cancel.Style = slack.StyleDanger

	blocks := []slack.Block{
		slack.NewImageBlock(c.opts.ImageURL, confirmedAlt, "", nil),
		slack.NewSectionBlock(summary, nil, nil),
		slack.NewActionBlock("booking_actions", view, cancel),
		slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("Booking ID: `%s`", f.BookingID), false, false)),
	}

	return ChatClientCard{Facts: f, Fallback: ConfirmationText(f), Blocks: blocks}
}

func (c *Composer) richContent(f Facts) WidgetRichContent {
	return WidgetRichContent{
		Facts: f,
		RichContent: [][]RichElement{{
			{Type: "image", RawURL: c.opts.ImageURL, AccessibilityText: confirmedAlt},
			{Type: "description", Title: "✅ " + headline(f), Text: detailLines(f)},
			{Type: "button", Icon: &RichIcon{Type: "launch"}, Text: viewLabel, Link: c.opts.ViewURL},
			{
				Type: "button",
				Icon: &RichIcon{Type: "cancel", Color: "#d93025"},
				Text: cancelLabel,
				Event: &RichEvent{
					Name:         intent.CancelEvent,
					LanguageCode: c.opts.LanguageCode,
					Parameters:   map[string]any{"bookingId": f.BookingID},
				},
			},
		}},
	}
}

func (c *Composer) telegramMessage(f Facts) MobileMessage {
	caption := fmt.Sprintf("✅ %s\n%s", headline(f), strings.Join(detailLines(f), "\n"))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(viewLabel, c.opts.ViewURL),
			tgbotapi.NewInlineKeyboardButtonData(cancelLabel, intent.CallbackData(f.BookingID)),
		),
	)

	return MobileMessage{
		Facts:    f,
		PhotoURL: c.opts.ImageURL,
		Caption:  caption,
		Keyboard: keyboard,
	}
}
