// Package notify pushes short operational messages to a chat.
package notify

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"subtrack/internal/logger"
	"subtrack/internal/services"
)

// Notifier delivers a plain text message.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// sender is the part of tgbotapi.BotAPI used to deliver messages.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends messages to a single Telegram chat.
type TelegramNotifier struct {
	api    sender
	chatID int64
}

// NewTelegramNotifier authenticates with the bot token and targets chatID.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

// Notify sends text to the configured chat.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// Nop discards every message.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, string) error { return nil }

// GenerationReporter reports generator runs that created transactions or
// hit errors. Quiet runs are not reported.
type GenerationReporter struct {
	notifier Notifier
}

// NewGenerationReporter creates a reporter sending through notifier.
func NewGenerationReporter(notifier Notifier) *GenerationReporter {
	return &GenerationReporter{notifier: notifier}
}

// ObserveGeneration implements services.GenerationObserver.
func (r *GenerationReporter) ObserveGeneration(ctx context.Context, result *services.GenerateResult) {
	if result == nil || (result.Created == 0 && len(result.Errors) == 0) {
		return
	}
	if err := r.notifier.Notify(ctx, FormatGeneration(result)); err != nil {
		logger.Named("notify").Warnw("failed to send generation report", "error", err)
	}
}

// FormatGeneration renders a run summary as a chat message.
func FormatGeneration(result *services.GenerateResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subscription charges for %s\n", result.AsOf.String())
	fmt.Fprintf(&b, "Created: %d\nSkipped: %d\n", result.Created, result.Skipped)
	if len(result.Errors) > 0 {
		fmt.Fprintf(&b, "Errors: %d\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(&b, "- %s: %s\n", e.SubscriptionID, e.Message)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
