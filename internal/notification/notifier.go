package notification

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/stpnv0/BookingWebhook/internal/domain"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
	"github.com/stpnv0/BookingWebhook/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

const defaultPushTimeout = 10 * time.Second

// pushClient bounds push calls: they run detached from the request context.
func pushClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultPushTimeout
	}
	return &http.Client{Timeout: timeout}
}

type slackSender interface {
	Send(ctx context.Context, channel string, fragments []fragment.Fragment) error
}

type telegramSender interface {
	Send(ctx context.Context, chatID int64, fragments []fragment.Fragment) error
}

// Notifier mirrors fragments to chat push APIs. Targets are independent:
// they run concurrently and a failure in one never affects the other.
type Notifier struct {
	slack    slackSender
	telegram telegramSender
	logger   logger.Logger
}

func NewNotifier(slack slackSender, telegram telegramSender, logger logger.Logger) *Notifier {
	return &Notifier{slack: slack, telegram: telegram, logger: logger}
}

func (n *Notifier) Push(ctx context.Context, fragments []fragment.Fragment, dest domain.Destination) {
	if dest.Empty() {
		return
	}

	var wg sync.WaitGroup

	if dest.SlackChannel != "" && n.slack != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := n.slack.Send(ctx, dest.SlackChannel, fragments)
			n.record(ctx, fragment.PlatformSlack, dest.SlackChannel, err)
		}()
	}

	if dest.TelegramChatID != nil && n.telegram != nil {
		chatID := *dest.TelegramChatID
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := n.telegram.Send(ctx, chatID, fragments)
			n.record(ctx, fragment.PlatformTelegram, strconv.FormatInt(chatID, 10), err)
		}()
	}

	wg.Wait()
}

func (n *Notifier) record(ctx context.Context, platform fragment.Platform, target string, err error) {
	if err == nil {
		metrics.PushNotificationsTotal.WithLabelValues(string(platform), "sent").Inc()
		return
	}

	metrics.PushNotificationsTotal.WithLabelValues(string(platform), "failed").Inc()
	n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to push notification",
		logger.String("platform", string(platform)),
		logger.String("target", target),
		logger.String("error", errors.Join(domain.ErrPushFailed, err).Error()),
	)
}
