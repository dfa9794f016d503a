package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_feed/internal/domain/entity"
	"deal_feed/pkg/contextx"
	"deal_feed/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type alertCounter interface {
	IncAlerts()
}

type nopCounter struct{}

func (nopCounter) IncAlerts() {}

type TelegramBot struct {
	bot     *telego.Bot
	chatID  int64
	metrics alertCounter
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:     bot,
		chatID:  chatID,
		metrics: nopCounter{},
	}, nil
}

func (b *TelegramBot) WithMetrics(m alertCounter) *TelegramBot {
	b.metrics = m
	return b
}

// Run отправляет горящие сделки из канала, пока он не закрыт.
func (b *TelegramBot) Run(ctx context.Context, listings <-chan entity.Listing) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case listing, ok := <-listings:
			if !ok {
				return nil
			}
			if err := b.SendListing(ctx, listing); err != nil {
				logger(ctx).Error("failed to send listing",
					slog.String(logx.FieldDealID, listing.Deal.ID),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) SendListing(ctx context.Context, listing entity.Listing) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		FormatListing(listing),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	b.metrics.IncAlerts()

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// FormatStarted и FormatStopped служебные сообщения о запуске и остановке наблюдения.
func FormatStarted(app, version string) string {
	return fmt.Sprintf("%s %s: watching deals", app, version)
}

func FormatStopped(app string) string {
	return app + ": stopped"
}

// FormatListing HTML-текст уведомления. Строки без данных пропускаются.
func FormatListing(l entity.Listing) string {
	var sb strings.Builder

	sb.WriteString("🔥 <b>Ending soon!</b>\n\n")
	fmt.Fprintf(&sb, "🏷 <b>%s</b>\n", html.EscapeString(l.Deal.Title))

	if l.Deal.MerchantName != nil && *l.Deal.MerchantName != "" {
		fmt.Fprintf(&sb, "🏪 %s\n", html.EscapeString(*l.Deal.MerchantName))
	}

	if l.Deal.PriceDeal != nil {
		fmt.Fprintf(&sb, "💰 <b>Price:</b> %s", html.EscapeString(price(*l.Deal.PriceDeal, l.Deal.Currency)))
		if l.Deal.PriceOriginal != nil {
			fmt.Fprintf(&sb, " <s>%s</s>", html.EscapeString(price(*l.Deal.PriceOriginal, l.Deal.Currency)))
		}
		sb.WriteString("\n")
	}

	if badge := l.DiscountBadge(); badge != "" {
		fmt.Fprintf(&sb, "📉 <b>Discount:</b> %s", badge)
		if l.Savings != nil && *l.DiscountPercent > 0 {
			fmt.Fprintf(&sb, " (save %s)", html.EscapeString(price(*l.Savings, l.Deal.Currency)))
		}
		sb.WriteString("\n")
	}

	if l.UrgencyLabel != "" {
		fmt.Fprintf(&sb, "⏳ %s", l.UrgencyLabel)
		if l.Countdown != "" {
			fmt.Fprintf(&sb, " (%s)", l.Countdown)
		}
		sb.WriteString("\n")
	}

	if a := l.Availability; a != nil {
		fmt.Fprintf(&sb, "📦 %d/%d left", a.Remaining, a.Total)
		if a.LowStock {
			sb.WriteString(" · low stock")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func price(amount, currency string) string {
	if currency == "" {
		return amount
	}
	return amount + " " + currency
}
