package domain

// WebhookRequest is the platform-neutral view of one fulfillment call.
type WebhookRequest struct {
	ResponseID  string
	Session     string
	Source      string
	IntentName  string
	Parameters  map[string]any
	Event       *InlineEvent
	Destination Destination
}

// InlineEvent is a UI callback (button press) that bypassed NLU extraction.
type InlineEvent struct {
	Name       string
	Parameters map[string]any
}

// Destination holds the push targets found in the platform payload.
type Destination struct {
	SlackChannel   string
	TelegramChatID *int64
}

func (d Destination) Empty() bool {
	return d.SlackChannel == "" && d.TelegramChatID == nil
}

// DeliveryClaim is what the delivery guard knows about one webhook delivery.
type DeliveryClaim struct {
	BookingID string
	// Owned is set when this call holds the claim and must write the ledger.
	Owned bool
	// Confirmed is set once the ledger write for BookingID succeeded.
	Confirmed bool
}
