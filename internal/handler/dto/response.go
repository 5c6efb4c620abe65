package dto

import (
	"github.com/stpnv0/BookingWebhook/internal/fragment"
)

type WebhookResponse struct {
	FulfillmentText     string    `json:"fulfillmentText,omitempty"`
	FulfillmentMessages []Message `json:"fulfillmentMessages,omitempty"`
}

// Message is a Dialogflow ES intent message. Platform is omitted for
// surfaces that read the default platform (Messenger, plain text).
type Message struct {
	Platform string         `json:"platform,omitempty"`
	Text     *TextMessage   `json:"text,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
}

type TextMessage struct {
	Text []string `json:"text"`
}

func ToWebhookResponse(r fragment.Response) WebhookResponse {
	msgs := make([]Message, 0, len(r.Fragments))
	for _, f := range r.Fragments {
		msgs = append(msgs, ToMessage(f))
	}

	return WebhookResponse{
		FulfillmentText:     r.Text,
		FulfillmentMessages: msgs,
	}
}

func ToMessage(f fragment.Fragment) Message {
	switch v := f.(type) {
	case fragment.ChatClientCard:
		return Message{
			Platform: string(fragment.PlatformSlack),
			Payload: map[string]any{
				"text":   v.Fallback,
				"blocks": v.Blocks,
			},
		}
	case fragment.MobileMessage:
		return Message{
			Platform: string(fragment.PlatformTelegram),
			Payload: map[string]any{
				"telegram": map[string]any{
					"text":         v.Caption,
					"reply_markup": v.Keyboard,
				},
			},
		}
	case fragment.WidgetRichContent:
		return Message{
			Payload: map[string]any{"richContent": v.RichContent},
		}
	case fragment.GenericText:
		return Message{Text: &TextMessage{Text: []string{v.Text}}}
	default:
		return Message{}
	}
}
