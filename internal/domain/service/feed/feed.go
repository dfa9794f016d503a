// Package feed фильтрует и классифицирует ленту сделок. Функции пакета
// зависят только от (сделки, фильтры, now), поэтому их можно вызывать на
// каждое нажатие клавиши и на каждый тик таймера.
package feed

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/value"
)

// Apply оставляет сделки, прошедшие все фильтры (логическое И), и считает для
// них производные поля. Порядок входа сохраняется, если не задана сортировка.
func Apply(deals []entity.Deal, filters value.Filters, now time.Time) entity.Result {
	match := Matcher(filters, now)

	kept := lo.Filter(deals, func(deal entity.Deal, _ int) bool {
		return match(deal)
	})

	listings := lo.Map(kept, func(deal entity.Deal, _ int) entity.Listing {
		return Derive(deal, now)
	})

	sortListings(listings, filters.Normalized().Sort)

	return entity.Result{
		Listings: listings,
		Total:    len(deals),
		Now:      now,
	}
}

// Matcher собирает предикат для набора фильтров.
func Matcher(filters value.Filters, now time.Time) func(entity.Deal) bool {
	filters = filters.Normalized()

	query := strings.ToLower(strings.TrimSpace(filters.Query))
	threshold := filters.TimeWindow.Hours()

	return func(deal entity.Deal) bool {
		if filters.SellerID != "" && deal.SellerID != filters.SellerID {
			return false
		}

		text := strings.ToLower(deal.SearchText())

		if query != "" && !strings.Contains(text, query) {
			return false
		}

		if threshold > 0 {
			hours := HoursRemaining(deal.ExpiresAt, now)
			if hours == nil || *hours > threshold {
				return false
			}
		}

		return MatchesCategory(text, filters.Category)
	}
}

func sortListings(listings []entity.Listing, order value.SortOrder) {
	switch order {
	case value.SortEndingSoon:
		slices.SortStableFunc(listings, func(a, b entity.Listing) int {
			return compareNilLast(a.HoursRemaining, b.HoursRemaining, false)
		})
	case value.SortDiscount:
		slices.SortStableFunc(listings, func(a, b entity.Listing) int {
			return compareNilLast(a.DiscountPercent, b.DiscountPercent, true)
		})
	}
}

func compareNilLast(a, b *int, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case desc:
		return cmp.Compare(*b, *a)
	default:
		return cmp.Compare(*a, *b)
	}
}
