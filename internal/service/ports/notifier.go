package ports

import (
	"context"

	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
)

type BookingNotifier interface {
	Push(ctx context.Context, fragments []fragment.Fragment, dest domain.Destination)
}
