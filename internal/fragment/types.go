package fragment

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
)

type GenericText struct {
	Facts
	Text string
}

// ChatClientCard is a Slack Block Kit message.
type ChatClientCard struct {
	Facts
	Fallback string
	Blocks   []slack.Block
}

// MobileMessage is a Telegram photo message with an inline keyboard.
type MobileMessage struct {
	Facts
	PhotoURL string
	Caption  string
	Keyboard tgbotapi.InlineKeyboardMarkup
}

// WidgetRichContent is a Dialogflow Messenger richContent payload.
type WidgetRichContent struct {
	Facts
	RichContent [][]RichElement
}

type RichElement struct {
	Type              string     `json:"type"`
	RawURL            string     `json:"rawUrl,omitempty"`
	AccessibilityText string     `json:"accessibilityText,omitempty"`
	Title             string     `json:"title,omitempty"`
	Text              any        `json:"text,omitempty"`
	Icon              *RichIcon  `json:"icon,omitempty"`
	Link              string     `json:"link,omitempty"`
	Event             *RichEvent `json:"event,omitempty"`
}

type RichIcon struct {
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

type RichEvent struct {
	Name         string         `json:"name"`
	LanguageCode string         `json:"languageCode,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
}

func (GenericText) Platform() Platform       { return PlatformGeneric }
func (ChatClientCard) Platform() Platform    { return PlatformSlack }
func (MobileMessage) Platform() Platform     { return PlatformTelegram }
func (WidgetRichContent) Platform() Platform { return PlatformMessenger }

func (GenericText) fragment()       {}
func (ChatClientCard) fragment()    {}
func (MobileMessage) fragment()     {}
func (WidgetRichContent) fragment() {}
