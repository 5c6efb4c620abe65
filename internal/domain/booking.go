package domain

import "time"

// Unspecified is substituted for any booking fact the user did not provide.
const Unspecified = "unspecified"

// BookingRequest is the canonical booking built from one webhook call.
type BookingRequest struct {
	ID          string    `json:"id"`
	Activity    string    `json:"activity"`
	Location    string    `json:"location"`
	TutorNeeded bool      `json:"tutor_needed"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TutorLabel renders TutorNeeded the way the ledger and chat surfaces show it.
func (b BookingRequest) TutorLabel() string {
	if b.TutorNeeded {
		return "Yes"
	}
	return "No"
}

// Ledger column names.
const (
	FieldLocation  = "Location"
	FieldActivity  = "Activity"
	FieldUUID      = "UUID"
	FieldTutor     = "Need for tutor"
	FieldTimestamp = "Timestamp"
	FieldDate      = "Booked for date"
)

// LedgerRecord returns the row written to the external ledger.
func (b BookingRequest) LedgerRecord() map[string]string {
	rec := map[string]string{
		FieldLocation:  b.Location,
		FieldActivity:  b.Activity,
		FieldUUID:      b.ID,
		FieldTutor:     b.TutorLabel(),
		FieldTimestamp: b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.Date != "" && b.Date != Unspecified {
		rec[FieldDate] = b.Date
	}
	return rec
}

type CancellationRequest struct {
	BookingID string `json:"booking_id"`
}
