package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slackCall struct {
	path    string
	channel string
	text    string
	blocks  string
}

func newSlackServer(t *testing.T, ok bool) (*httptest.Server, chan slackCall) {
	t.Helper()
	calls := make(chan slackCall, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		calls <- slackCall{
			path:    r.URL.Path,
			channel: r.PostForm.Get("channel"),
			text:    r.PostForm.Get("text"),
			blocks:  r.PostForm.Get("blocks"),
		}
		w.Header().Set("Content-Type", "application/json")
		if ok {
			_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1700000000.000100"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestSlackNotifier_SendCard(t *testing.T) {
	srv, calls := newSlackServer(t, true)
	n := NewSlackNotifier("xoxb-test", srv.URL+"/", 0, newTestLogger(t))
	require.True(t, n.Enabled())

	card := fragment.ChatClientCard{
		Facts:    fragment.Facts{BookingID: "abc"},
		Fallback: "booked",
		Blocks: []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*booked*", false, false), nil, nil),
		},
	}

	err := n.Send(context.Background(), "C1", []fragment.Fragment{card, fragment.GenericText{Text: "plain"}})
	require.NoError(t, err)

	call := <-calls
	assert.Equal(t, "/chat.postMessage", call.path)
	assert.Equal(t, "C1", call.channel)
	assert.Equal(t, "booked", call.text)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(call.blocks), &blocks))
	require.Len(t, blocks, 1)
	assert.Equal(t, "section", blocks[0]["type"])
}

func TestSlackNotifier_SendTextFallback(t *testing.T) {
	srv, calls := newSlackServer(t, true)
	n := NewSlackNotifier("xoxb-test", srv.URL+"/", 0, newTestLogger(t))

	require.NoError(t, n.Send(context.Background(), "C1", []fragment.Fragment{fragment.GenericText{Text: "cancelled"}}))

	call := <-calls
	assert.Equal(t, "cancelled", call.text)
	assert.Empty(t, call.blocks)
}

func TestSlackNotifier_APIError(t *testing.T) {
	srv, _ := newSlackServer(t, false)
	n := NewSlackNotifier("xoxb-test", srv.URL+"/", 0, newTestLogger(t))

	err := n.Send(context.Background(), "C1", []fragment.Fragment{fragment.GenericText{Text: "x"}})
	assert.ErrorContains(t, err, "channel_not_found")
}

func TestSlackNotifier_Disabled(t *testing.T) {
	n := NewSlackNotifier("", "", 0, newTestLogger(t))
	assert.False(t, n.Enabled())
	assert.NoError(t, n.Send(context.Background(), "C1", nil))
}

func TestSlackNotifier_TimeoutBoundsHungCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	n := NewSlackNotifier("xoxb-test", srv.URL+"/", 100*time.Millisecond, newTestLogger(t))

	start := time.Now()
	err := n.Send(context.WithoutCancel(context.Background()), "C1", []fragment.Fragment{fragment.GenericText{Text: "x"}})

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
