package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const eventDateLayout = "02.01.2006 15:04"

// TelegramNotifier is the push channel behind persisted notifications.
// Delivery is best-effort: a missing token, missing chat id or send failure
// is logged and never surfaces to the caller.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, push notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEventJoined(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*You joined an event!*\n\nEvent: %s\nStarts (UTC): %s",
		event.Title, event.StartsAt.Format(eventDateLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyMeetingEnded(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*The meeting has been ended by the host*\n\nEvent: %s",
		event.Title,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyEventEnded(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*The event has ended*\n\nEvent: %s\nEnded (UTC): %s",
		event.Title, event.EndsAt.Format(eventDateLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCertificateIssued(ctx context.Context, user *domain.User, event *domain.Event, reissued bool) {
	verb := "is ready"
	if reissued {
		verb = "has been reissued"
	}
	text := fmt.Sprintf(
		"*Your certificate %s!*\n\nEvent: %s\nDownload it from your certificates page.",
		verb, event.Title,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("push skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("push skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("push skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram push",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
