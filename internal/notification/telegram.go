package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, member *domain.Member, facility *domain.Facility, b *domain.Booking) {
	text := "*Slot reserved!*\n\n" + bookingDetails(facility, b) +
		fmt.Sprintf("\nTotal: %s\nSubmit your payment reference to keep the booking.", formatAmount(b.TotalPrice))
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, member *domain.Member, facility *domain.Facility, b *domain.Booking) {
	text := "*Booking confirmed!*\n\n" + bookingDetails(facility, b) +
		"\nPayment verified. See you on court."
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, member *domain.Member, facility *domain.Facility, b *domain.Booking) {
	text := "*Booking cancelled*\n\n" + bookingDetails(facility, b)
	n.send(ctx, member.TelegramChatID, text)
}

func bookingDetails(facility *domain.Facility, b *domain.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Facility: %s #%d\n", facility.Label, b.ResourceID)
	fmt.Fprintf(&sb, "Date: %s, %s-%s\n", b.Date, b.StartTime, b.EndTime)
	if b.DiscountLabel != nil {
		fmt.Fprintf(&sb, "%s: -%s\n", *b.DiscountLabel, formatAmount(b.Discount))
	}
	return sb.String()
}

// Суммы хранятся в минимальных единицах валюты.
func formatAmount(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
