package dto

import (
	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/intent"
)

// ToWebhookRequest flattens the Dialogflow envelope into the domain request.
func ToWebhookRequest(r WebhookRequest) domain.WebhookRequest {
	p := r.OriginalDetectIntentRequest.Payload
	return domain.WebhookRequest{
		ResponseID:  r.ResponseID,
		Session:     r.Session,
		Source:      r.OriginalDetectIntentRequest.Source,
		IntentName:  r.QueryResult.Intent.DisplayName,
		Parameters:  r.QueryResult.Parameters,
		Event:       inlineEvent(p),
		Destination: destination(p),
	}
}

// inlineEvent checks the button channels in order: a named event, a Slack
// block action, a Telegram callback query.
func inlineEvent(p PlatformPayload) *domain.InlineEvent {
	if p.Event != nil && p.Event.Name != "" {
		return &domain.InlineEvent{Name: p.Event.Name, Parameters: p.Event.Parameters}
	}

	for _, a := range p.Actions {
		if intent.Canonical(a.ActionID) == intent.CancelEvent {
			return intent.CancelInline(a.Value)
		}
	}

	if p.Data != nil && p.Data.CallbackQuery != nil {
		if ev, ok := intent.ParseCallback(p.Data.CallbackQuery.Data); ok {
			return ev
		}
	}

	return nil
}

func destination(p PlatformPayload) domain.Destination {
	var d domain.Destination

	switch {
	case p.Event != nil && p.Event.Channel != "":
		d.SlackChannel = p.Event.Channel
	case p.Channel != nil && p.Channel.ID != "":
		d.SlackChannel = p.Channel.ID
	}

	if id, ok := telegramChat(p); ok {
		d.TelegramChatID = &id
	}

	return d
}

func telegramChat(p PlatformPayload) (int64, bool) {
	if data := p.Data; data != nil {
		switch {
		case data.Chat != nil && data.Chat.ID != 0:
			return data.Chat.ID, true
		case data.From != nil && data.From.ID != 0:
			return data.From.ID, true
		}
		if cq := data.CallbackQuery; cq != nil {
			switch {
			case cq.Message != nil && cq.Message.Chat != nil && cq.Message.Chat.ID != 0:
				return cq.Message.Chat.ID, true
			case cq.From != nil && cq.From.ID != 0:
				return cq.From.ID, true
			}
		}
	}

	if p.Event != nil && p.Event.User != nil {
		return parseChatID(p.Event.User.ID)
	}

	return 0, false
}
