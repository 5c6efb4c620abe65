package handler

import (
	"context"
	"net/http"

	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
	"github.com/stpnv0/BookingWebhook/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const msgMalformedRequest = "Sorry, something went wrong on our side. Please try again."

type FulfillmentSvc interface {
	Fulfill(ctx context.Context, req domain.WebhookRequest) fragment.Response
}

type Handler struct {
	fulfillmentService FulfillmentSvc
}

func NewHandler(fulfillmentService FulfillmentSvc) *Handler {
	return &Handler{fulfillmentService: fulfillmentService}
}

// Webhook always answers 200: the NLU platform needs a well-formed
// fulfillment object even when the call could not be processed.
func (h *Handler) Webhook(c *ginext.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusOK, dto.ToWebhookResponse(fragment.TextResponse(msgMalformedRequest)))
		return
	}

	resp := h.fulfillmentService.Fulfill(c.Request.Context(), dto.ToWebhookRequest(req))

	c.JSON(http.StatusOK, dto.ToWebhookResponse(resp))
}
