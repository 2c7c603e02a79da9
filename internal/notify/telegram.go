package notify

import (
	"context"
	"log/slog"

	"pairplay/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier pushes short messages to a participant's Telegram chat.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
	log *slog.Logger
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log := logger.With("component", "notifier")
	log.Info("notifier bot authorized", "username", bot.Self.UserName)

	return &TelegramNotifier{bot: bot, log: log}, nil
}

// Notify sends title+body to the recipient chat. Errors are returned for the
// caller to log; callers treat delivery as fire-and-forget.
func (n *TelegramNotifier) Notify(ctx context.Context, recipient int64, title, body string, meta map[string]string) error {
	text := title
	if body != "" {
		text += "\n" + body
	}

	msg := tgbotapi.NewMessage(recipient, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.log.Warn("notification send failed", "recipient", recipient, "error", err)
		return err
	}
	return nil
}
