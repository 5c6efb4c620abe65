package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
	"github.com/stpnv0/BookingWebhook/internal/intent"
	"github.com/stpnv0/BookingWebhook/internal/metrics"
	"github.com/stpnv0/BookingWebhook/internal/params"
	"github.com/stpnv0/BookingWebhook/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	MsgMissingBookingID = "Missing booking ID. Please tell me the ID of the booking you want to cancel."
	MsgLedgerWriteFail  = "Booking confirmed, but we couldn’t log it to the spreadsheet."
	MsgUnhandled        = "Intent not handled by webhook."
	MsgBookingPending   = "Your booking is still being processed. Please check again in a moment."
)

// Outcome labels used in logs and metrics.
const (
	outcomeCreated    = "created"
	outcomeReplayed   = "replayed"
	outcomePending    = "pending"
	outcomeLedgerFail = "ledger_failed"
	outcomeCancelled  = "cancelled"
	outcomeNotFound   = "not_found"
	outcomeMissingID  = "missing_id"
	outcomeUnhandled  = "unhandled"
)

type FulfillmentService struct {
	ledger   ports.BookingLedger
	notifier ports.BookingNotifier
	guard    ports.DeliveryGuard
	composer *fragment.Composer
	logger   logger.Logger

	newID func() string
	now   func() time.Time
}

// NewFulfillmentService wires the dispatcher. guard may be nil.
func NewFulfillmentService(
	ledger ports.BookingLedger,
	notifier ports.BookingNotifier,
	guard ports.DeliveryGuard,
	composer *fragment.Composer,
	logger logger.Logger,
) *FulfillmentService {
	return &FulfillmentService{
		ledger:   ledger,
		notifier: notifier,
		guard:    guard,
		composer: composer,
		logger:   logger,
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

// Fulfill classifies the call, applies at most one ledger side effect and
// composes the reply. It never fails: every error path degrades to text.
func (s *FulfillmentService) Fulfill(ctx context.Context, req domain.WebhookRequest) fragment.Response {
	trigger := intent.Resolve(req.IntentName, req.Event)
	op := intent.ClassifyRequest(req.IntentName, req.Event)

	var (
		resp    fragment.Response
		outcome string
	)
	switch op {
	case intent.Book:
		resp, outcome = s.book(ctx, req)
	case intent.Cancel:
		resp, outcome = s.cancel(ctx, req, cancelID(trigger, req.Parameters))
	default:
		resp, outcome = fragment.TextResponse(MsgUnhandled), outcomeUnhandled
		s.logger.Debug("intent not handled",
			logger.String("intent", req.IntentName),
			logger.String("response_id", req.ResponseID),
		)
	}

	metrics.FulfillmentsTotal.WithLabelValues(op.String(), outcome).Inc()
	return resp
}

func cancelID(t intent.Trigger, raw map[string]any) string {
	if et, ok := t.(intent.EventTrigger); ok && intent.Classify(et) == intent.Cancel && et.BookingID != "" {
		return et.BookingID
	}
	return params.BookingID(raw)
}

func (s *FulfillmentService) book(ctx context.Context, req domain.WebhookRequest) (fragment.Response, string) {
	booking := params.Normalize(req.Parameters)
	booking.ID = s.newID()
	booking.CreatedAt = s.now().UTC()

	claim := s.claim(ctx, req.ResponseID, booking.ID)
	if !claim.Owned {
		if !claim.Confirmed {
			s.logger.Info("duplicate delivery while first is in flight",
				logger.String("booking_id", claim.BookingID),
				logger.String("response_id", req.ResponseID),
			)
			return fragment.TextResponse(MsgBookingPending), outcomePending
		}
		booking.ID = claim.BookingID
		s.logger.Info("duplicate delivery, reusing booking",
			logger.String("booking_id", booking.ID),
			logger.String("response_id", req.ResponseID),
		)
		return s.created(booking), outcomeReplayed
	}

	if err := s.ledger.Create(ctx, booking.LedgerRecord()); err != nil {
		s.logger.Error("failed to log booking to ledger",
			logger.String("booking_id", booking.ID),
			logger.String("activity", booking.Activity),
			logger.String("error", err.Error()),
		)
		s.release(ctx, req.ResponseID)
		return fragment.TextResponse(MsgLedgerWriteFail), outcomeLedgerFail
	}
	s.confirm(ctx, req.ResponseID, booking.ID)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("activity", booking.Activity),
		logger.String("location", booking.Location),
	)

	resp := s.created(booking)
	s.push(ctx, resp.Fragments, req.Destination)

	return resp, outcomeCreated
}

func (s *FulfillmentService) created(b domain.BookingRequest) fragment.Response {
	return fragment.Response{
		Text:      fragment.ConfirmationText(fragment.FactsOf(b)),
		Fragments: s.composer.Compose(fragment.Outcome{Kind: fragment.Created, Booking: b}),
	}
}

func (s *FulfillmentService) cancel(ctx context.Context, req domain.WebhookRequest, bookingID string) (fragment.Response, string) {
	if bookingID == "" {
		s.logger.Info("cancellation without booking id",
			logger.String("response_id", req.ResponseID),
		)
		return fragment.TextResponse(MsgMissingBookingID), outcomeMissingID
	}

	cancellation := domain.CancellationRequest{BookingID: bookingID}

	kind, outcome := fragment.Cancelled, outcomeCancelled
	err := s.ledger.DeleteByKey(ctx, domain.FieldUUID, bookingID)
	switch {
	case err == nil:
		s.logger.Info("booking cancelled", logger.String("booking_id", bookingID))
	case errors.Is(err, domain.ErrBookingNotFound):
		kind, outcome = fragment.CancelNotFound, outcomeNotFound
		s.logger.Info("booking to cancel not found", logger.String("booking_id", bookingID))
	default:
		kind, outcome = fragment.CancelFailed, outcomeLedgerFail
		s.logger.Error("failed to cancel booking",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
	}

	frags := s.composer.Compose(fragment.Outcome{Kind: kind, Cancellation: cancellation})
	resp := fragment.Response{Fragments: frags}
	if txt, ok := fragment.Find[fragment.GenericText](frags); ok {
		resp.Text = txt.Text
	}

	if kind == fragment.Cancelled {
		s.push(ctx, frags, req.Destination)
	}

	return resp, outcome
}

// claim binds the delivery to id. A claim not owned by this call carries
// the earlier booking id. Guard failures fail open.
func (s *FulfillmentService) claim(ctx context.Context, deliveryKey, id string) domain.DeliveryClaim {
	owned := domain.DeliveryClaim{BookingID: id, Owned: true}
	if s.guard == nil || deliveryKey == "" {
		return owned
	}

	claim, err := s.guard.Claim(ctx, deliveryKey, id)
	if err != nil {
		s.logger.Warn("delivery guard unavailable, continuing without it",
			logger.String("response_id", deliveryKey),
			logger.String("error", err.Error()),
		)
		return owned
	}

	return claim
}

// confirm marks the claim as backed by a ledger row. On failure the claim
// stays pending, so redeliveries answer MsgBookingPending until it expires.
func (s *FulfillmentService) confirm(ctx context.Context, deliveryKey, id string) {
	if s.guard == nil || deliveryKey == "" {
		return
	}
	if err := s.guard.Confirm(ctx, deliveryKey, id); err != nil {
		s.logger.Warn("failed to confirm delivery claim",
			logger.String("response_id", deliveryKey),
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
	}
}

func (s *FulfillmentService) release(ctx context.Context, deliveryKey string) {
	if s.guard == nil || deliveryKey == "" {
		return
	}
	if err := s.guard.Release(ctx, deliveryKey); err != nil {
		s.logger.Warn("failed to release delivery claim",
			logger.String("response_id", deliveryKey),
			logger.String("error", err.Error()),
		)
	}
}

// push mirrors fragments out of band without holding up the response.
func (s *FulfillmentService) push(ctx context.Context, frags []fragment.Fragment, dest domain.Destination) {
	if dest.Empty() {
		return
	}
	go s.notifier.Push(context.WithoutCancel(ctx), frags, dest)
}
