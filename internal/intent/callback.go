package intent

import (
	"strings"

	"github.com/stpnv0/BookingWebhook/internal/domain"
)

const callbackSep = ":"

// CallbackData encodes a cancel action for platforms whose buttons carry a
// single opaque string (Telegram callback_data).
func CallbackData(bookingID string) string {
	return CancelEvent + callbackSep + bookingID
}

// ParseCallback decodes CallbackData. ok is false for foreign payloads.
func ParseCallback(data string) (*domain.InlineEvent, bool) {
	name, id, found := strings.Cut(strings.TrimSpace(data), callbackSep)
	if !found || name != CancelEvent || id == "" {
		return nil, false
	}
	return CancelInline(id), true
}

// CancelInline builds the inline event that re-enters the cancel path.
func CancelInline(bookingID string) *domain.InlineEvent {
	return &domain.InlineEvent{
		Name:       CancelEvent,
		Parameters: map[string]any{"bookingId": bookingID},
	}
}
