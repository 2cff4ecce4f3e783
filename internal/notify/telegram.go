package notify

import (
	"context"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/interviewdost/backend/pkg/errors"
)

// Telegram copies messages to an operators chat as plain text.
type Telegram struct {
	bot  *telebot.Bot
	chat telebot.ChatID
}

func NewTelegram(cfg TelegramConfig) (*Telegram, error) {
	b, err := telebot.NewBot(telebot.Settings{
		URL:     cfg.URL,
		Token:   cfg.Token,
		Offline: true,
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &Telegram{bot: b, chat: telebot.ChatID(cfg.ChatID)}, nil
}

func (t *Telegram) Send(_ context.Context, msg Message) error {
	text := msg.Subject + "\n\n" + msg.Text
	if len(msg.Recipients) != 0 {
		text += "\n\nTo: " + strings.Join(msg.Recipients, ", ")
	}

	_, err := t.bot.Send(t.chat, text, &telebot.SendOptions{DisableWebPagePreview: true})
	return errors.WrapFail(err, "send telegram message")
}
