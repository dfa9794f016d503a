package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/value"
)

const PageSize = 10

func FormatStatus(running bool, filters value.Filters, last entity.Result) string {
	status := "🔴 остановлен"
	if running {
		status = "🟢 работает"
	}

	return fmt.Sprintf("📊 <b>Статус</b>\n\n🔍 <b>Наблюдатель:</b> %s\n📦 <b>В выдаче:</b> %d из %d\n\n%s",
		status,
		len(last.Listings),
		last.Total,
		FormatFilters(filters),
	)
}

func FormatFilters(filters value.Filters) string {
	f := filters.Normalized()

	query := "нет"
	if q := strings.TrimSpace(f.Query); q != "" {
		query = "<code>" + html.EscapeString(q) + "</code>"
	}

	text := fmt.Sprintf("🧰 <b>Фильтры</b>\n🏷 Категория: %s\n⏳ Окно: %s\n🔎 Поиск: %s\n↕️ Порядок: %s",
		f.Category, f.TimeWindow, query, f.Sort)

	if f.SellerID != "" {
		text += "\n👤 Только мои сделки"
	}

	return text
}

// FeedPage одна страница выдачи и клавиатура пагинации. page приводится к
// допустимому диапазону.
func FeedPage(res entity.Result, page int, prefix string) (string, *telego.InlineKeyboardMarkup) {
	total := len(res.Listings)
	if total == 0 {
		return FeedEmpty, nil
	}

	totalPages := (total + PageSize - 1) / PageSize
	page = min(max(page, 1), totalPages)

	start := (page - 1) * PageSize
	end := min(start+PageSize, total)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 <b>Сделки</b> (Стр. %d/%d)\n\n", page, totalPages)

	for i, l := range res.Listings[start:end] {
		fmt.Fprintf(&sb, "%d. %s\n", start+i+1, FormatLine(l))
	}

	return sb.String(), paginationKeyboard(page, totalPages, prefix)
}

// FormatLine компактная строка сделки: название, скидка, срочность.
func FormatLine(l entity.Listing) string {
	parts := []string{"<b>" + html.EscapeString(l.Deal.Title) + "</b>"}

	if badge := l.DiscountBadge(); badge != "" {
		parts = append(parts, badge)
	}
	if l.Urgency.HasBadge() {
		parts = append(parts, urgencyIcon(l.Urgency)+" "+l.UrgencyLabel)
	}
	if l.Availability != nil && l.Availability.LowStock {
		parts = append(parts, fmt.Sprintf("📦 %d/%d", l.Availability.Remaining, l.Availability.Total))
	}

	return strings.Join(parts, " · ")
}

func urgencyIcon(u value.Urgency) string {
	switch u {
	case value.UrgencyExpired:
		return "⚫"
	case value.UrgencyCritical:
		return "🔴"
	case value.UrgencyWarning:
		return "🟠"
	case value.UrgencyCaution:
		return "🟢"
	default:
		return ""
	}
}

func paginationKeyboard(page, totalPages int, prefix string) *telego.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("%s:%d", prefix, page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("%s:%d", prefix, page+1)))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(buttons...),
	)
}
