// Package cli печатает выдачу ленты в терминал.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"deal_feed/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	titleMaxLen = 40
	noValue     = "-"
)

// Renderer печатает очередной результат; используется в режиме watch.
type Renderer func(w io.Writer, res entity.Result) error

// Render таблица с бейджами: цена, скидка, срочность, остаток.
func Render(w io.Writer, res entity.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // skip

	fmt.Fprintln(tw, "TITLE\tPRICE\tDISCOUNT\tSAVINGS\tENDS\tSTOCK")

	for _, l := range res.Listings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(l.Deal.Title, titleMaxLen),
			priceCell(l.Deal),
			discountCell(l),
			savingsCell(l),
			urgencyCell(l),
			stockCell(l.Availability),
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%d of %d deals\n", len(res.Listings), res.Total); err != nil {
		return fmt.Errorf("fmt.Fprintf: %w", err)
	}

	return nil
}

// RenderCountdown короткие строки обратного отсчёта для ежесекундного тика.
// Сделки без срока пропускаются.
func RenderCountdown(w io.Writer, res entity.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // skip

	for _, l := range res.Listings {
		if l.Countdown == "" {
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", truncate(l.Deal.Title, titleMaxLen), l.Countdown, l.UrgencyLabel)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush: %w", err)
	}

	return nil
}

func RenderJSON(w io.Writer, res entity.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("enc.Encode: %w", err)
	}

	return nil
}

func priceCell(d entity.Deal) string {
	if d.PriceDeal == nil {
		return noValue
	}

	cell := *d.PriceDeal
	if d.PriceOriginal != nil {
		cell += " (" + *d.PriceOriginal + ")"
	}
	if d.Currency != "" {
		cell += " " + d.Currency
	}

	return cell
}

func discountCell(l entity.Listing) string {
	if badge := l.DiscountBadge(); badge != "" {
		return badge
	}
	return noValue
}

func savingsCell(l entity.Listing) string {
	if l.Savings == nil {
		return noValue
	}
	return *l.Savings
}

func urgencyCell(l entity.Listing) string {
	if !l.Urgency.HasBadge() {
		return noValue
	}
	return fmt.Sprintf("%s [%s]", l.UrgencyLabel, l.Urgency.Color())
}

func stockCell(a *entity.Availability) string {
	if a == nil {
		return noValue
	}

	cell := fmt.Sprintf("%d/%d", a.Remaining, a.Total)
	if a.LowStock {
		cell += " LOW"
	}

	return cell
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)

	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
