package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stpnv0/BookingWebhook/internal/domain"
)

// ActivitySlot maps one NLU entity slot onto a canonical activity label.
type ActivitySlot struct {
	Slot  string
	Label string
}

// ActivitySlots is evaluated in order; the first non-empty slot wins.
var ActivitySlots = []ActivitySlot{
	{Slot: "acad_history", Label: "history"},
	{Slot: "acad_maths", Label: "maths"},
	{Slot: "acad_sci", Label: "science"},
	{Slot: "art_drawing", Label: "drawing"},
	{Slot: "art_painting", Label: "painting"},
	{Slot: "art_sculpting", Label: "sculpting"},
	{Slot: "sport_badminton", Label: "badminton"},
	{Slot: "sport_chess", Label: "chess"},
	{Slot: "sport_swimming", Label: "swimming"},
	{Slot: "activity"},
}

var (
	locationSlots  = []string{"geo-city", "location", "city"}
	tutorSlots     = []string{"tutor", "needTutor", "need_tutor"}
	dateSlots      = []string{"date-time", "date_time", "date"}
	dateInnerKeys  = []string{"date_time", "startDateTime", "date"}
	bookingIDSlots = []string{"bookingId", "booking_id", "uuid"}
)

// Normalize builds a BookingRequest from loosely typed NLU parameters.
// It never fails: every missing fact becomes domain.Unspecified.
// ID and CreatedAt are left for the caller to assign.
func Normalize(raw map[string]any) domain.BookingRequest {
	return domain.BookingRequest{
		Activity:    activity(raw),
		Location:    location(raw),
		TutorNeeded: tutorNeeded(raw),
		Date:        date(raw),
	}
}

// BookingID returns the cancellation id carried in parameters, or "".
func BookingID(raw map[string]any) string {
	for _, slot := range bookingIDSlots {
		if s := scalar(raw[slot]); s != "" {
			return s
		}
	}
	return ""
}

func activity(raw map[string]any) string {
	for _, as := range ActivitySlots {
		v := firstValue(raw[as.Slot])
		if v == nil {
			continue
		}
		if b, isBool := v.(bool); isBool {
			if b && as.Label != "" {
				return as.Label
			}
			continue
		}
		s := scalar(v)
		if s == "" {
			continue
		}
		if label, known := knownActivity(s); known {
			return label
		}
		return s
	}
	return domain.Unspecified
}

func knownActivity(value string) (string, bool) {
	for _, as := range ActivitySlots {
		if as.Label != "" && strings.EqualFold(as.Label, value) {
			return as.Label, true
		}
	}
	return "", false
}

func location(raw map[string]any) string {
	for _, slot := range locationSlots {
		switch v := firstValue(raw[slot]).(type) {
		case map[string]any:
			if s := scalar(v["city"]); s != "" {
				return s
			}
		default:
			if s := scalar(v); s != "" {
				return s
			}
		}
	}
	return domain.Unspecified
}

// tutorNeeded is true when any tutor slot holds a truthy value. Unfilled
// slots arrive as "" and must not mask a filled one.
func tutorNeeded(raw map[string]any) bool {
	for _, slot := range tutorSlots {
		if truthy(raw[slot]) {
			return true
		}
	}
	return false
}

func date(raw map[string]any) string {
	for _, slot := range dateSlots {
		v, ok := raw[slot]
		if !ok {
			continue
		}
		if s := unwrapDate(v); s != "" {
			return s
		}
	}
	return domain.Unspecified
}

func unwrapDate(v any) string {
	switch t := v.(type) {
	case map[string]any:
		for _, k := range dateInnerKeys {
			if s := unwrapDate(t[k]); s != "" {
				return s
			}
		}
		return ""
	case []any:
		if len(t) == 0 {
			return ""
		}
		return unwrapDate(t[0])
	default:
		return scalar(v)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "no", "false", "0", "n", "off":
			return false
		}
		return true
	case []any:
		return len(t) > 0
	default:
		return false
	}
}

// firstValue unwraps list parameters to their first non-blank element.
func firstValue(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	for _, e := range list {
		if e == nil {
			continue
		}
		if str, isStr := e.(string); isStr && strings.TrimSpace(str) == "" {
			continue
		}
		return e
	}
	return nil
}

// scalar flattens strings and numbers to trimmed text; anything else is "".
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return ""
	}
}
