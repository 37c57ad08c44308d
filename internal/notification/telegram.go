package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter posts admin alerts into a single Telegram chat.
type TelegramAlerter struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramAlerter(token string, adminChatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" || adminChatID == 0 {
		logger.Warn("telegram bot token or admin chat id is empty, admin alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (a *TelegramAlerter) NotifyAdmin(ctx context.Context, title, message, referenceID string) error {
	text := formatAlert(title, message, referenceID)

	if a.bot == nil {
		a.logger.Debug("admin alert skipped (bot disabled)", logger.String("text", text))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(a.adminChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram alert: %w", err)
	}
	return nil
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func formatAlert(title, message, referenceID string) string {
	var sb strings.Builder
	sb.WriteString("*" + markdownEscaper.Replace(title) + "*\n\n")
	sb.WriteString(markdownEscaper.Replace(message))
	if referenceID != "" {
		sb.WriteString("\n\nRef: `" + referenceID + "`")
	}
	return sb.String()
}
