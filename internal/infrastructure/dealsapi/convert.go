package dealsapi

import (
	"strings"
	"time"

	"deal_feed/internal/domain/entity"
	"deal_feed/pkg/lox"
	"deal_feed/pkg/rest"
)

// Форматы, которые встречаются в expiresAt/startsAt. Всё, что не разобралось,
// считается отсутствующим сроком.
//
//nolint:gochecknoglobals
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func toEntity(d rest.Deal) entity.Deal {
	return entity.Deal{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		PriceOriginal:   amount(d.PriceOriginal),
		PriceDeal:       amount(d.PriceDeal),
		Currency:        d.Currency,
		ExpiresAt:       parseTime(d.ExpiresAt),
		StartsAt:        parseTime(d.StartsAt),
		MerchantName:    lox.Ptr(lox.Deref(d.MerchantName, "")),
		SellerID:        d.SellerID,
		QuantityTotal:   quantity(d.QuantityTotal),
		QuantityClaimed: quantity(d.QuantityClaimed),
	}
}

func amount(a *rest.Amount) *string {
	if a == nil {
		return nil
	}

	return lox.Ptr(a.String())
}

// quantity nil, если значение не целое: остаток тогда просто не считается.
func quantity(q *rest.Quantity) *int {
	if q == nil {
		return nil
	}

	n, ok := q.Int()
	if !ok {
		return nil
	}

	return &n
}

func parseTime(ts *rest.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}

	v := strings.TrimSpace(ts.String())
	if v == "" {
		return nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}

	return nil
}
