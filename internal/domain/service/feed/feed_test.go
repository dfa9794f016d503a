package feed_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/service/feed"
	"deal_feed/internal/domain/value"
	"deal_feed/pkg/tests"
)

func TestApplyScenarios(t *testing.T) {
	rq := require.New(t)

	t.Run("Burger within 24h", func(*testing.T) {
		deals := []entity.Deal{{
			ID:            "burger",
			Title:         "50% Off Burger",
			ExpiresAt:     at(18 * time.Hour),
			PriceOriginal: str("120.00"),
			PriceDeal:     str("60.00"),
		}}

		res := feed.Apply(deals, value.Filters{TimeWindow: value.TimeWindow24h}, testNow)

		rq.Len(res.Listings, 1)
		rq.Equal(1, res.Total)
		rq.Equal(num(50), res.Listings[0].DiscountPercent)
		rq.Equal(value.UrgencyCritical, res.Listings[0].Urgency)
		rq.Equal("18h left", res.Listings[0].UrgencyLabel)
	})

	t.Run("Spa day outside 24h", func(*testing.T) {
		deals := []entity.Deal{{
			ID:            "spa",
			Title:         "Spa Day",
			ExpiresAt:     at(48 * time.Hour),
			PriceOriginal: str("600.00"),
			PriceDeal:     str("350.00"),
		}}

		res := feed.Apply(deals, value.Filters{TimeWindow: value.TimeWindow24h}, testNow)

		rq.Empty(res.Listings)
		rq.Equal(1, res.Total)
	})

	t.Run("Malformed price does not drop the deal", func(*testing.T) {
		deals := []entity.Deal{{
			ID:            "studio",
			Title:         "Studio Marrakech",
			PriceOriginal: str("800.00"),
			PriceDeal:     str("abc"),
		}}

		res := feed.Apply(deals, value.Filters{}, testNow)

		rq.Len(res.Listings, 1)
		rq.Nil(res.Listings[0].DiscountPercent)
		rq.Nil(res.Listings[0].Savings)
		rq.Equal(value.UrgencyNormal, res.Listings[0].Urgency)
	})

	t.Run("Search by title", func(*testing.T) {
		deals := []entity.Deal{
			{ID: "burger", Title: "Gourmet Burger Meal"},
			{ID: "car", Title: "Car Rental"},
		}

		res := feed.Apply(deals, value.Filters{Query: "burger"}, testNow)

		rq.Equal([]string{"burger"}, res.IDs())
	})

	t.Run("Expires exactly now", func(*testing.T) {
		deals := []entity.Deal{{ID: "now", Title: "Last call", ExpiresAt: at(0)}}

		res := feed.Apply(deals, value.Filters{TimeWindow: value.TimeWindow24h}, testNow)

		rq.Len(res.Listings, 1)
		rq.Equal(num(0), res.Listings[0].HoursRemaining)
		rq.Equal(value.UrgencyExpired, res.Listings[0].Urgency)
		rq.Equal("Expired", res.Listings[0].UrgencyLabel)
	})

	t.Run("Zero quantity", func(*testing.T) {
		deals := []entity.Deal{{ID: "zero", Title: "Sold out", QuantityTotal: num(0), QuantityClaimed: num(0)}}

		res := feed.Apply(deals, value.Filters{}, testNow)

		rq.Len(res.Listings, 1)
		rq.NotNil(res.Listings[0].Availability)
		rq.Zero(res.Listings[0].Availability.Percentage)
	})

	t.Run("Empty and nil input", func(*testing.T) {
		rq.Empty(feed.Apply(nil, value.Filters{Query: "x", TimeWindow: value.TimeWindow72h}, testNow).Listings)
		rq.Empty(feed.Apply([]entity.Deal{}, value.Filters{}, testNow).Listings)
	})
}

func TestApplySearch(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{ID: "title", Title: "Morning COFFEE"},
		{ID: "description", Title: "Breakfast", Description: "with fresh coffee"},
		{ID: "merchant", Title: "Brunch", MerchantName: str("Coffee Lab")},
		{ID: "other", Title: "Spa Day"},
	}

	lower := feed.Apply(deals, value.Filters{Query: "coffee"}, testNow)
	upper := feed.Apply(deals, value.Filters{Query: "COFFEE"}, testNow)
	padded := feed.Apply(deals, value.Filters{Query: "  Coffee  "}, testNow)

	rq.Equal([]string{"title", "description", "merchant"}, lower.IDs())
	rq.Equal(lower.IDs(), upper.IDs())
	rq.Equal(lower.IDs(), padded.IDs())

	rq.Len(feed.Apply(deals, value.Filters{Query: "   "}, testNow).Listings, len(deals))
}

func TestApplyCategory(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{ID: "pizza", Title: "Two Pizzas for one"},
		{ID: "cafe", Title: "Latte", MerchantName: str("Café Clock")},
		{ID: "taxi", Title: "Airport Taxi", Description: "City transfer"},
		{ID: "riad", Title: "Riad in the Medina", Description: "Two nights"},
		{ID: "shoes", Title: "Running Shoes", MerchantName: str("Sport Store")},
		{ID: "massage", Title: "Hammam and massage"},
		{ID: "misc", Title: "Mystery box"},
		{ID: "pasta", Title: "Spaghetti Carbonara", Description: "Fried calamari as a starter, dinner for two"},
	}

	testCases := []struct {
		category value.Category
		want     []string
	}{
		{
			category: value.CategoryAll,
			want:     []string{"pizza", "cafe", "taxi", "riad", "shoes", "massage", "misc", "pasta"},
		},
		{category: value.CategoryFood, want: []string{"pizza", "cafe", "pasta"}},
		{category: value.CategoryTransport, want: []string{"taxi"}},
		{category: value.CategoryHousing, want: []string{"riad"}},
		{category: value.CategoryShopping, want: []string{"shoes"}},
		{category: value.CategoryServices, want: []string{"massage"}},
	}

	for _, tc := range testCases {
		t.Run(tc.category.String(), func(*testing.T) {
			res := feed.Apply(deals, value.Filters{Category: tc.category}, testNow)

			rq.Equal(tc.want, res.IDs())
		})
	}
}

func TestMatchesCategory(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		text     string
		category value.Category
		want     bool
	}{
		{text: "spaghetti carbonara", category: value.CategoryServices, want: false},
		{text: "spaghetti carbonara", category: value.CategoryTransport, want: false},
		{text: "gift card for fried chicken", category: value.CategoryTransport, want: false},
		{text: "business lunch", category: value.CategoryTransport, want: false},
		{text: "day at the spa", category: value.CategoryServices, want: true},
		{text: "two spas, one price", category: value.CategoryServices, want: true},
		{text: "car rental", category: value.CategoryTransport, want: true},
		{text: "three rides downtown", category: value.CategoryTransport, want: true},
		{text: "double burgers", category: value.CategoryFood, want: true},
		{text: "anything", category: value.CategoryAll, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.text+"/"+tc.category.String(), func(*testing.T) {
			rq.Equal(tc.want, feed.MatchesCategory(tc.text, tc.category))
		})
	}
}

func TestApplyTimeWindow(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{ID: "none", Title: "No expiry"},
		{ID: "expired", Title: "Gone", ExpiresAt: at(-time.Hour)},
		{ID: "h24", Title: "Day", ExpiresAt: at(24 * time.Hour)},
		{ID: "h30", Title: "Day and a bit", ExpiresAt: at(30 * time.Hour)},
		{ID: "h60", Title: "Two and a half days", ExpiresAt: at(60 * time.Hour)},
		{ID: "h100", Title: "Later", ExpiresAt: at(100 * time.Hour)},
	}

	testCases := []struct {
		window value.TimeWindow
		want   []string
	}{
		{window: value.TimeWindowAll, want: []string{"none", "expired", "h24", "h30", "h60", "h100"}},
		{window: value.TimeWindow24h, want: []string{"expired", "h24"}},
		{window: value.TimeWindow48h, want: []string{"expired", "h24", "h30"}},
		{window: value.TimeWindow72h, want: []string{"expired", "h24", "h30", "h60"}},
	}

	for _, tc := range testCases {
		t.Run(tc.window.String(), func(*testing.T) {
			res := feed.Apply(deals, value.Filters{TimeWindow: tc.window}, testNow)

			rq.Equal(tc.want, res.IDs())
		})
	}
}

func TestApplySeller(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{ID: "a", Title: "Mine", SellerID: "u1"},
		{ID: "b", Title: "Theirs", SellerID: "u2"},
		{ID: "c", Title: "Mine too", SellerID: "u1"},
	}

	rq.Equal([]string{"a", "c"}, feed.Apply(deals, value.Filters{SellerID: "u1"}, testNow).IDs())
	rq.Len(feed.Apply(deals, value.Filters{}, testNow).Listings, 3)
}

func TestApplySort(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{ID: "late-small", Title: "a", ExpiresAt: at(50 * time.Hour), PriceOriginal: str("10"), PriceDeal: str("9")},
		{ID: "no-expiry", Title: "b", PriceOriginal: str("10"), PriceDeal: str("2")},
		{ID: "soon-none", Title: "c", ExpiresAt: at(2 * time.Hour)},
		{ID: "soon-big", Title: "d", ExpiresAt: at(2 * time.Hour), PriceOriginal: str("10"), PriceDeal: str("5")},
	}

	rq.Equal(
		[]string{"late-small", "no-expiry", "soon-none", "soon-big"},
		feed.Apply(deals, value.Filters{}, testNow).IDs(),
	)
	rq.Equal(
		[]string{"soon-none", "soon-big", "late-small", "no-expiry"},
		feed.Apply(deals, value.Filters{Sort: value.SortEndingSoon}, testNow).IDs(),
	)
	rq.Equal(
		[]string{"no-expiry", "soon-big", "late-small", "soon-none"},
		feed.Apply(deals, value.Filters{Sort: value.SortDiscount}, testNow).IDs(),
	)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{ID: "b", Title: "b", ExpiresAt: at(10 * time.Hour)},
		{ID: "a", Title: "a", ExpiresAt: at(time.Hour)},
	}

	feed.Apply(deals, value.Filters{Sort: value.SortEndingSoon}, testNow)

	rq.Equal("b", deals[0].ID)
	rq.Equal("a", deals[1].ID)
}

func randomDeals(r tests.Randomizer, n int) []entity.Deal {
	titles := []string{"Gourmet Burger Meal", "Car Rental", "Spa Day", "Studio Marrakech", "Coffee Beans", "Shoe Outlet"}
	prices := []string{"120.00", "60", "0", "abc", "", "99.99", "600.00"}

	deals := make([]entity.Deal, 0, n)

	for i := range n {
		deal := entity.Deal{
			ID:       fmt.Sprintf("d%d", i),
			Title:    tests.Pick(r, titles...),
			SellerID: tests.Pick(r, "u1", "u2"),
		}

		if r.Bool() {
			deal.ExpiresAt = at(time.Duration(r.Intn(200)-20) * time.Hour)
		}
		if r.Bool() {
			deal.PriceOriginal = str(tests.Pick(r, prices...))
			deal.PriceDeal = str(tests.Pick(r, prices...))
		}
		if r.Bool() {
			deal.QuantityTotal = num(r.Intn(5))
			deal.QuantityClaimed = num(r.Intn(8) - 1)
		}

		deals = append(deals, deal)
	}

	return deals
}

func TestApplyProperties(t *testing.T) {
	rq := require.New(t)
	r := tests.NewRandomizer()

	queries := []string{"", "burger", "COFFEE", "studio", "zzz"}
	categories := value.Categories()
	windows := []value.TimeWindow{value.TimeWindowAll, value.TimeWindow24h, value.TimeWindow48h, value.TimeWindow72h}

	for range 200 {
		deals := randomDeals(r, r.Intn(30))
		filters := value.Filters{
			Query:      tests.Pick(r, queries...),
			Category:   tests.Pick(r, categories...),
			TimeWindow: tests.Pick(r, windows...),
		}

		first := feed.Apply(deals, filters, testNow)

		// Детерминизм.
		rq.Equal(first, feed.Apply(deals, filters, testNow), "seed=%d", r.Seed)

		// Идемпотентность.
		rq.Equal(first.IDs(), feed.Apply(first.Deals(), filters, testNow).IDs(), "seed=%d", r.Seed)

		// all ⊇ 24h при прочих равных.
		narrow := filters
		narrow.TimeWindow = value.TimeWindow24h
		wide := filters
		wide.TimeWindow = value.TimeWindowAll
		rq.Subset(feed.Apply(deals, wide, testNow).IDs(), feed.Apply(deals, narrow, testNow).IDs(), "seed=%d", r.Seed)

		// Результат является подпоследовательностью входа.
		rq.Subset(ids(deals), first.IDs(), "seed=%d", r.Seed)

		for _, l := range first.Listings {
			if l.DiscountPercent != nil && *l.DiscountPercent < 0 {
				rq.Equal("-", (*l.Savings)[:1], "seed=%d", r.Seed)
			}
			if l.Availability != nil {
				rq.GreaterOrEqual(l.Availability.Remaining, 0)
				rq.LessOrEqual(l.Availability.Remaining, l.Availability.Total)
			}
		}
	}
}

func ids(deals []entity.Deal) []string {
	out := make([]string, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.ID)
	}
	return out
}
