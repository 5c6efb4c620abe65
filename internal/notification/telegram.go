package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

// NewTelegramNotifier returns a disabled notifier when token is empty.
// An empty endpoint selects the public Bot API. tgbotapi ignores contexts,
// so timeout bounds every API call instead.
func NewTelegramNotifier(token, endpoint string, timeout time.Duration, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, pushClient(timeout))
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Enabled() bool {
	return n.bot != nil
}

// Send delivers the mobile fragment as a photo with caption and keyboard,
// or the plain-text fragment when no mobile rendering exists.
func (n *TelegramNotifier) Send(ctx context.Context, chatID int64, fragments []fragment.Fragment) error {
	if n.bot == nil {
		n.logger.Debug("telegram push skipped (bot disabled)", logger.Int64("chat_id", chatID))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("telegram push: %w", err)
	}

	var msg tgbotapi.Chattable
	if mm, ok := fragment.Find[fragment.MobileMessage](fragments); ok {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(mm.PhotoURL))
		photo.Caption = mm.Caption
		photo.ReplyMarkup = mm.Keyboard
		msg = photo
	} else if txt, ok := fragment.Find[fragment.GenericText](fragments); ok {
		msg = tgbotapi.NewMessage(chatID, txt.Text)
	} else {
		n.logger.Debug("telegram push skipped (nothing to render)", logger.Int64("chat_id", chatID))
		return nil
	}

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}

	return nil
}
