package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/value"
)

const (
	criticalHours = 24
	warningHours  = 48
	cautionHours  = 72

	lowStockPercent = 20
)

// HoursRemaining ceil((expiresAt - now) / 1h), не меньше нуля. nil, если
// срок не задан.
func HoursRemaining(expiresAt *time.Time, now time.Time) *int {
	if expiresAt == nil {
		return nil
	}

	left := expiresAt.Sub(now)
	if left <= 0 {
		return intPtr(0)
	}

	return intPtr(int(math.Ceil(left.Hours())))
}

// Classify первый подходящий порог побеждает.
func Classify(hours *int) value.Urgency {
	switch {
	case hours == nil:
		return value.UrgencyNormal
	case *hours <= 0:
		return value.UrgencyExpired
	case *hours <= criticalHours:
		return value.UrgencyCritical
	case *hours <= warningHours:
		return value.UrgencyWarning
	case *hours <= cautionHours:
		return value.UrgencyCaution
	default:
		return value.UrgencyNormal
	}
}

// UrgencyLabel текст бейджа; пустая строка, если бейджа нет.
func UrgencyLabel(hours *int) string {
	switch Classify(hours) {
	case value.UrgencyExpired:
		return "Expired"
	case value.UrgencyCritical, value.UrgencyWarning:
		return fmt.Sprintf("%dh left", *hours)
	case value.UrgencyCaution:
		return fmt.Sprintf("%dd %dh", *hours/criticalHours, *hours%criticalHours)
	default:
		return ""
	}
}

// Countdown оставшееся время в виде HH:MM:SS для ежесекундного тика.
func Countdown(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil {
		return ""
	}

	left := expiresAt.Sub(now)
	if left <= 0 {
		return "00:00:00"
	}

	secs := int64(left / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// Discount процент скидки и экономия. Обе величины nil, если хотя бы одна
// цена не разбирается или исходная цена равна нулю. priceDeal > priceOriginal
// не отсекается: скидка просто уходит в минус.
func Discount(original, deal *string) (*int, *string) {
	o, ok := parsePrice(original)
	if !ok || o.IsZero() {
		return nil, nil
	}

	d, ok := parsePrice(deal)
	if !ok {
		return nil, nil
	}

	diff := o.Sub(d)

	// floor(x + 0.5): половина округляется вверх, в том числе для отрицательных.
	percent := diff.Div(o).Mul(decimal.NewFromInt(100)).Add(decimal.NewFromFloat(0.5)).Floor()
	savings := diff.StringFixed(2)

	return intPtr(int(percent.IntPart())), &savings
}

func parsePrice(s *string) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// ComputeAvailability nil, если тираж не задан. Остаток зажат в [0, total],
// при total == 0 процент равен 0.
func ComputeAvailability(total, claimed *int) *entity.Availability {
	if total == nil {
		return nil
	}

	t := max(*total, 0)

	c := 0
	if claimed != nil {
		c = *claimed
	}

	remaining := min(max(t-c, 0), t)

	var percentage float64
	if t > 0 {
		percentage = float64(remaining) / float64(t) * 100
	}

	return &entity.Availability{
		Remaining:  remaining,
		Total:      t,
		Percentage: percentage,
		LowStock:   percentage <= lowStockPercent,
	}
}

// Derive все производные поля одной сделки.
func Derive(deal entity.Deal, now time.Time) entity.Listing {
	hours := HoursRemaining(deal.ExpiresAt, now)
	discount, savings := Discount(deal.PriceOriginal, deal.PriceDeal)

	return entity.Listing{
		Deal:            deal,
		DiscountPercent: discount,
		Savings:         savings,
		HoursRemaining:  hours,
		Urgency:         Classify(hours),
		UrgencyLabel:    UrgencyLabel(hours),
		Countdown:       Countdown(deal.ExpiresAt, now),
		Availability:    ComputeAvailability(deal.QuantityTotal, deal.QuantityClaimed),
	}
}

func intPtr(v int) *int {
	return &v
}
