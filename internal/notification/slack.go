package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/slack-go/slack"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
	"github.com/wb-go/wbf/logger"
)

type SlackNotifier struct {
	client *slack.Client
	logger logger.Logger
}

// NewSlackNotifier returns a disabled notifier when token is empty.
// An empty apiURL selects the public Web API.
func NewSlackNotifier(token, apiURL string, timeout time.Duration, logger logger.Logger) *SlackNotifier {
	if token == "" {
		logger.Warn("slack bot token is empty, notifications disabled")
		return &SlackNotifier{logger: logger}
	}

	opts := []slack.Option{slack.OptionHTTPClient(pushClient(timeout))}
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}

	return &SlackNotifier{client: slack.New(token, opts...), logger: logger}
}

func (n *SlackNotifier) Enabled() bool {
	return n.client != nil
}

// Send posts the chat-client card to channel, falling back to plain text.
func (n *SlackNotifier) Send(ctx context.Context, channel string, fragments []fragment.Fragment) error {
	if n.client == nil {
		n.logger.Debug("slack push skipped (client disabled)", logger.String("channel", channel))
		return nil
	}

	var opts []slack.MsgOption
	if card, ok := fragment.Find[fragment.ChatClientCard](fragments); ok {
		opts = append(opts,
			slack.MsgOptionText(card.Fallback, false),
			slack.MsgOptionBlocks(card.Blocks...),
		)
	} else if txt, ok := fragment.Find[fragment.GenericText](fragments); ok {
		opts = append(opts, slack.MsgOptionText(txt.Text, false))
	} else {
		n.logger.Debug("slack push skipped (nothing to render)", logger.String("channel", channel))
		return nil
	}

	if _, _, err := n.client.PostMessageContext(ctx, channel, opts...); err != nil {
		return fmt.Errorf("slack post message: %w", err)
	}

	return nil
}
