package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackData_RoundTrip(t *testing.T) {
	data := CallbackData("abc-123")
	assert.Equal(t, "cancel_booking:abc-123", data)

	ev, ok := ParseCallback(data)
	require.True(t, ok)
	assert.Equal(t, CancelEvent, ev.Name)
	assert.Equal(t, "abc-123", ev.Parameters["bookingId"])
}

func TestParseCallback_Foreign(t *testing.T) {
	for _, data := range []string{"", "cancel_booking", "cancel_booking:", "other:abc", "abc"} {
		_, ok := ParseCallback(data)
		assert.False(t, ok, data)
	}
}
