package entity

import (
	"fmt"
	"time"

	"deal_feed/internal/domain/value"
)

// Listing сделка, прошедшая фильтры, вместе с производными полями для
// отрисовки бейджей.
type Listing struct {
	Deal Deal `json:"deal"`

	DiscountPercent *int    `json:"discountPercent,omitempty"`
	Savings         *string `json:"savings,omitempty"`

	HoursRemaining *int          `json:"hoursRemaining,omitempty"`
	Urgency        value.Urgency `json:"urgency"`
	UrgencyLabel   string        `json:"urgencyLabel,omitempty"`
	Countdown      string        `json:"countdown,omitempty"`

	Availability *Availability `json:"availability,omitempty"`
}

// DiscountBadge "-50%" для скидки, "+20%" для наценки (цена сделки выше
// исходной), "0%" без скидки и пустая строка, если скидка не вычислена.
func (l Listing) DiscountBadge() string {
	if l.DiscountPercent == nil {
		return ""
	}

	switch p := *l.DiscountPercent; {
	case p > 0:
		return fmt.Sprintf("-%d%%", p)
	case p < 0:
		return fmt.Sprintf("+%d%%", -p)
	default:
		return "0%"
	}
}

// Availability остаток тиража сделки.
type Availability struct {
	Remaining  int     `json:"remaining"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	LowStock   bool    `json:"lowStock"`
}

// Result выход классификатора.
type Result struct {
	Listings []Listing `json:"listings"`
	// Total размер входного списка до фильтрации.
	Total int       `json:"total"`
	Now   time.Time `json:"now"`
}

// IDs идентификаторы сделок в порядке выдачи.
func (r Result) IDs() []string {
	ids := make([]string, 0, len(r.Listings))
	for _, l := range r.Listings {
		ids = append(ids, l.Deal.ID)
	}
	return ids
}

// Deals сделки без производных полей, в порядке выдачи.
func (r Result) Deals() []Deal {
	deals := make([]Deal, 0, len(r.Listings))
	for _, l := range r.Listings {
		deals = append(deals, l.Deal)
	}
	return deals
}
