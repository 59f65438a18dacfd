package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramSender struct {
	bot    botAPI
	chatID int64
}

func NewTelegramSender(bot botAPI, chatID int64) *TelegramSender {
	return &TelegramSender{
		bot:    bot,
		chatID: chatID,
	}
}

func (s *TelegramSender) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	return nil
}

type NoopSender struct{}

func (NoopSender) Send(context.Context, string) error {
	return nil
}

// NewSender returns a Telegram sender, or a NoopSender when no token or chat is configured
// or the bot cannot be reached.
func NewSender(token string, chatID int64) Sender {
	if token == "" || chatID == 0 {
		zap.L().Info("telegram notifications disabled")
		return NoopSender{}
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		zap.L().Warn("telegram bot unavailable, notifications disabled", zap.Error(err))
		return NoopSender{}
	}
	return NewTelegramSender(bot, chatID)
}
