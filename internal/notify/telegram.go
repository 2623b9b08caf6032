package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSink posts confirmations to the dispatch desk chat.
type TelegramSink struct {
	bot    botSender
	chatID int64
}

func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram: %w", ErrDisabled)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

func (s *TelegramSink) Send(ctx context.Context, msg Message) error {
	text := msg.Text
	if text == "" {
		text = msg.Subject
	}
	if text == "" {
		return fmt.Errorf("telegram: empty message")
	}

	return runBounded(ctx, func() error {
		if _, err := s.bot.Send(tgbotapi.NewMessage(s.chatID, text)); err != nil {
			return fmt.Errorf("telegram: send: %w", err)
		}
		return nil
	})
}
