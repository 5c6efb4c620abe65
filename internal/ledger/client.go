package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

const maxBodySize = 1 << 20

// Error is returned for every failed ledger call: transport failure,
// non-2xx status, malformed body or an open circuit.
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ledger %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{domain.ErrLedger, e.Err}
}

type Options struct {
	BaseURL          string
	Token            string
	Timeout          time.Duration
	FailureThreshold uint32
	OpenTimeout      time.Duration
	HTTPClient       *http.Client
}

// Client talks to a keyed HTTP record store (SheetDB API shape).
// Calls are never retried.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

func NewClient(opts Options, log logger.Logger) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("%w: ledger base url: %v", domain.ErrValidation, err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	threshold := opts.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	c := &Client{
		baseURL: base,
		token:   opts.Token,
		http:    hc,
		logger:  log,
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "ledger",
		Timeout: opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})

	return c, nil
}

type createRequest struct {
	Data map[string]string `json:"data"`
}

type createResponse struct {
	Created *int `json:"created"`
}

type deleteResponse struct {
	Deleted *int `json:"deleted"`
}

func (c *Client) Create(ctx context.Context, fields map[string]string) error {
	body, err := json.Marshal(createRequest{Data: fields})
	if err != nil {
		return &Error{Op: "create", Err: fmt.Errorf("marshal record: %w", err)}
	}

	var resp createResponse
	if err = c.do(ctx, "create", http.MethodPost, c.baseURL, body, &resp); err != nil {
		return err
	}
	if resp.Created == nil {
		return &Error{Op: "create", Err: errors.New("malformed response: missing created count")}
	}

	return nil
}

func (c *Client) DeleteByKey(ctx context.Context, field, value string) error {
	if field == "" || value == "" {
		return fmt.Errorf("%w: delete requires field and value", domain.ErrValidation)
	}

	endpoint := c.baseURL + "/" + url.PathEscape(field) + "/" + url.PathEscape(value)

	var resp deleteResponse
	if err := c.do(ctx, "delete", http.MethodDelete, endpoint, nil, &resp); err != nil {
		return err
	}
	if resp.Deleted == nil {
		return &Error{Op: "delete", Err: errors.New("malformed response: missing deleted count")}
	}
	if *resp.Deleted == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body []byte, out any) error {
	start := time.Now()

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, op, method, endpoint, body, out)
	})

	result := "ok"
	if err != nil {
		result = "error"
		var lerr *Error
		if !errors.As(err, &lerr) {
			err = &Error{Op: op, Err: err}
		}
	}
	metrics.LedgerRequestDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())

	return err
}

func (c *Client) roundTrip(ctx context.Context, op, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", bytes.TrimSpace(raw))}
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("malformed response: %w", err)}
	}

	return nil
}
