package params

import (
	"testing"

	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_BadmintonScenario(t *testing.T) {
	req := Normalize(map[string]any{
		"sport_badminton": "badminton",
		"geo-city":        "Pune",
		"tutor":           true,
	})

	assert.Equal(t, "badminton", req.Activity)
	assert.Equal(t, "Pune", req.Location)
	assert.True(t, req.TutorNeeded)
	assert.Equal(t, "Yes", req.TutorLabel())
	assert.Equal(t, domain.Unspecified, req.Date)
}

func TestNormalize_EmptyParameters(t *testing.T) {
	for _, raw := range []map[string]any{nil, {}} {
		req := Normalize(raw)

		assert.Equal(t, domain.Unspecified, req.Activity)
		assert.Equal(t, domain.Unspecified, req.Location)
		assert.Equal(t, domain.Unspecified, req.Date)
		assert.False(t, req.TutorNeeded)
		assert.Equal(t, "No", req.TutorLabel())
	}
}

func TestNormalize_Activity(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"first non-empty slot wins", map[string]any{"acad_maths": "", "art_painting": "painting", "sport_chess": "chess"}, "painting"},
		{"priority order", map[string]any{"sport_chess": "chess", "acad_history": "history"}, "history"},
		{"boolean slot resolves to its label", map[string]any{"sport_swimming": true}, "swimming"},
		{"false boolean slot skipped", map[string]any{"sport_swimming": false, "art_drawing": "drawing"}, "drawing"},
		{"known value canonicalised", map[string]any{"acad_sci": "Science"}, "science"},
		{"unknown value kept verbatim", map[string]any{"sport_chess": "blitz chess"}, "blitz chess"},
		{"generic slot fallback", map[string]any{"activity": "pottery"}, "pottery"},
		{"whitespace only is empty", map[string]any{"activity": "   "}, domain.Unspecified},
		{"non-scalar ignored", map[string]any{"acad_maths": map[string]any{"x": 1}}, domain.Unspecified},
		{"list slot takes first value", map[string]any{"sport_badminton": []any{"badminton"}}, "badminton"},
		{"list skips blank entries", map[string]any{"acad_maths": []any{"", "Maths"}}, "maths"},
		{"empty list skipped", map[string]any{"acad_maths": []any{}, "sport_chess": true}, "chess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw).Activity)
		})
	}
}

func TestNormalize_Location(t *testing.T) {
	assert.Equal(t, "Mumbai", Normalize(map[string]any{"location": map[string]any{"city": "Mumbai"}}).Location)
	assert.Equal(t, "Delhi", Normalize(map[string]any{"geo-city": "", "city": "Delhi"}).Location)
	assert.Equal(t, domain.Unspecified, Normalize(map[string]any{"location": map[string]any{}}).Location)
	assert.Equal(t, "Pune", Normalize(map[string]any{"geo-city": []any{"Pune", "Goa"}}).Location)
	assert.Equal(t, "Goa", Normalize(map[string]any{"geo-city": []any{}, "city": []any{" ", "Goa"}}).Location)
}

func TestNormalize_Tutor(t *testing.T) {
	tests := []struct {
		raw  map[string]any
		want bool
	}{
		{map[string]any{"tutor": true}, true},
		{map[string]any{"tutor": "yes"}, true},
		{map[string]any{"needTutor": "Yes please"}, true},
		{map[string]any{"need_tutor": float64(1)}, true},
		{map[string]any{"tutor": "no"}, false},
		{map[string]any{"tutor": "false"}, false},
		{map[string]any{"tutor": ""}, false},
		{map[string]any{"tutor": float64(0)}, false},
		{map[string]any{"tutor": nil, "needTutor": true}, true},
		{map[string]any{"tutor": "", "needTutor": true}, true},
		{map[string]any{"tutor": "no", "need_tutor": "yes"}, true},
		{map[string]any{"tutor": "", "needTutor": "", "need_tutor": false}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw).TutorNeeded, "%v", tt.raw)
	}
}

func TestNormalize_Date(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"nested date_time", map[string]any{"date-time": map[string]any{"date_time": "2024-05-01T10:00:00+05:30"}}, "2024-05-01T10:00:00+05:30"},
		{"period start", map[string]any{"date-time": map[string]any{"startDateTime": "2024-05-01T10:00:00Z", "endDateTime": "2024-05-01T12:00:00Z"}}, "2024-05-01T10:00:00Z"},
		{"raw string", map[string]any{"date-time": "2024-05-02"}, "2024-05-02"},
		{"list takes first", map[string]any{"date": []any{"2024-05-03", "2024-05-04"}}, "2024-05-03"},
		{"empty object falls back", map[string]any{"date-time": map[string]any{"date_time": ""}}, domain.Unspecified},
		{"malformed falls back", map[string]any{"date-time": map[string]any{"foo": true}}, domain.Unspecified},
		{"empty list falls back", map[string]any{"date": []any{}}, domain.Unspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw).Date)
		})
	}
}

func TestNormalize_NeverEmpty(t *testing.T) {
	inputs := []map[string]any{
		{"geo-city": 42.0},
		{"date-time": []any{map[string]any{}}},
		{"acad_history": nil, "location": nil, "date": nil},
		{"sport_badminton": []any{}},
	}

	for _, raw := range inputs {
		req := Normalize(raw)
		assert.NotEmpty(t, req.Activity)
		assert.NotEmpty(t, req.Location)
		assert.NotEmpty(t, req.Date)
	}
}

func TestNormalize_ListParameters(t *testing.T) {
	req := Normalize(map[string]any{
		"sport_badminton": []any{"badminton"},
		"geo-city":        []any{"Pune"},
		"tutor":           "",
		"needTutor":       true,
	})

	assert.Equal(t, "badminton", req.Activity)
	assert.Equal(t, "Pune", req.Location)
	assert.True(t, req.TutorNeeded)
	assert.Equal(t, "Yes", req.TutorLabel())
}

func TestBookingID(t *testing.T) {
	assert.Equal(t, "abc-123", BookingID(map[string]any{"bookingId": " abc-123 "}))
	assert.Equal(t, "def", BookingID(map[string]any{"bookingId": "", "uuid": "def"}))
	assert.Equal(t, "", BookingID(map[string]any{"bookingId": map[string]any{}}))
	assert.Equal(t, "", BookingID(nil))
}
