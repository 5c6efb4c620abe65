package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// WebhookRequest is the Dialogflow ES fulfillment request.
type WebhookRequest struct {
	ResponseID                  string          `json:"responseId"`
	Session                     string          `json:"session"`
	QueryResult                 QueryResult     `json:"queryResult"`
	OriginalDetectIntentRequest OriginalRequest `json:"originalDetectIntentRequest"`
}

type QueryResult struct {
	QueryText    string         `json:"queryText"`
	Parameters   map[string]any `json:"parameters"`
	Intent       Intent         `json:"intent"`
	LanguageCode string         `json:"languageCode"`
}

type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type OriginalRequest struct {
	Source  string          `json:"source"`
	Payload PlatformPayload `json:"payload"`
}

// PlatformPayload is the raw platform envelope. Only the routing fields and
// the button callbacks this service emits are decoded.
type PlatformPayload struct {
	Event   *PayloadEvent `json:"event,omitempty"`
	Channel *SlackChannel `json:"channel,omitempty"`
	Actions []SlackAction `json:"actions,omitempty"`
	Data    *TelegramData `json:"data,omitempty"`
}

type PayloadEvent struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
	Channel    string         `json:"channel"`
	User       *PayloadUser   `json:"user"`
}

// PayloadUser accepts "user": "U123", {"id": "U123"} and {"id": 42}.
type PayloadUser struct {
	ID string
}

func (u *PayloadUser) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &u.ID)
	}
	var obj struct {
		ID json.Number `json:"id"`
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return err
	}
	u.ID = obj.ID.String()
	return nil
}

type SlackChannel struct {
	ID string `json:"id"`
}

type SlackAction struct {
	ActionID string `json:"action_id"`
	Value    string `json:"value"`
}

type TelegramData struct {
	From          *TelegramUser     `json:"from,omitempty"`
	Chat          *TelegramChat     `json:"chat,omitempty"`
	CallbackQuery *TelegramCallback `json:"callback_query,omitempty"`
}

type TelegramUser struct {
	ID int64 `json:"id"`
}

type TelegramChat struct {
	ID int64 `json:"id"`
}

type TelegramCallback struct {
	Data    string           `json:"data"`
	From    *TelegramUser    `json:"from,omitempty"`
	Message *TelegramMessage `json:"message,omitempty"`
}

type TelegramMessage struct {
	Chat *TelegramChat `json:"chat,omitempty"`
}

func parseChatID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
