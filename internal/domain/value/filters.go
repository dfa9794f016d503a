package value

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"deal_feed/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Filters активные фильтры ленты. Нулевое значение эквивалентно "всё".
type Filters struct {
	Query      string
	Category   Category
	TimeWindow TimeWindow
	// SellerID если задан, остаются только сделки этого продавца ("мои сделки").
	SellerID string
	Sort     SortOrder
}

// RawFilters фильтры в том виде, в каком они приходят из CLI.
type RawFilters struct {
	Query      string `validate:"max=200"`
	Category   string `validate:"omitempty,oneof=all food transport housing realestate real-estate shopping services"`
	TimeWindow string `validate:"omitempty,oneof=all 24h 48h 72h 24 48 72"`
	SellerID   string `validate:"max=128"`
	Sort       string `validate:"omitempty,oneof=none ending-soon ending_soon discount"`
}

func NewFilters(raw RawFilters) (Filters, error) {
	raw.Category = strings.ToLower(strings.TrimSpace(raw.Category))
	raw.TimeWindow = strings.ToLower(strings.TrimSpace(raw.TimeWindow))
	raw.Sort = strings.ToLower(strings.TrimSpace(raw.Sort))
	raw.SellerID = strings.TrimSpace(raw.SellerID)

	if err := validate.Struct(raw); err != nil {
		return Filters{}, failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.InvalidFilters),
			failure.WithDescription(err.Error()),
		)
	}

	category, err := ParseCategory(raw.Category)
	if err != nil {
		return Filters{}, fmt.Errorf("ParseCategory: %w", err)
	}

	window, err := ParseTimeWindow(raw.TimeWindow)
	if err != nil {
		return Filters{}, fmt.Errorf("ParseTimeWindow: %w", err)
	}

	sort, err := ParseSortOrder(raw.Sort)
	if err != nil {
		return Filters{}, fmt.Errorf("ParseSortOrder: %w", err)
	}

	return Filters{
		Query:      raw.Query,
		Category:   category,
		TimeWindow: window,
		SellerID:   raw.SellerID,
		Sort:       sort,
	}, nil
}

// Normalized подставляет значения по умолчанию вместо пустых.
func (f Filters) Normalized() Filters {
	if f.Category == "" {
		f.Category = CategoryAll
	}
	if f.TimeWindow == "" {
		f.TimeWindow = TimeWindowAll
	}
	if f.Sort == "" {
		f.Sort = SortNone
	}
	return f
}
