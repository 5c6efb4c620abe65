package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrLedger     = errors.New("ledger request failed")
	ErrPushFailed = errors.New("push notification failed")
)

var (
	ErrValidation = errors.New("validation error")
)
