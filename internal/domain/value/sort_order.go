package value

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"deal_feed/pkg/errcodes"
)

// SortOrder порядок выдачи. По умолчанию сохраняется порядок API.
type SortOrder string

const (
	SortNone       SortOrder = "none"
	SortEndingSoon SortOrder = "ending-soon"
	SortDiscount   SortOrder = "discount"
)

func (s SortOrder) String() string {
	return string(s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "ending-soon", "ending_soon":
		return SortEndingSoon, nil
	case "discount":
		return SortDiscount, nil
	}

	return "", failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown sort order %q", s),
		failure.WithCode(errcodes.InvalidSortOrder),
		failure.WithDescription("sort must be one of none, ending-soon, discount"),
	)
}
