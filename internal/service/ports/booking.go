package ports

import (
	"context"

	"github.com/stpnv0/BookingWebhook/internal/domain"
)

// BookingLedger is the external system of record, keyed by booking id.
type BookingLedger interface {
	Create(ctx context.Context, fields map[string]string) error
	DeleteByKey(ctx context.Context, field, value string) error
}

// DeliveryGuard deduplicates redelivered webhook calls. A claim stays
// pending until Confirm records a successful ledger write.
type DeliveryGuard interface {
	Claim(ctx context.Context, deliveryKey, bookingID string) (domain.DeliveryClaim, error)
	Confirm(ctx context.Context, deliveryKey, bookingID string) error
	Release(ctx context.Context, deliveryKey string) error
}
