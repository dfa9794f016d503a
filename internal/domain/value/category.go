package value

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"deal_feed/pkg/errcodes"
)

// Category закрытый список категорий ленты. Хранимого поля категории у
// сделки нет, принадлежность выводится по ключевым словам.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryHousing   Category = "housing"
	CategoryShopping  Category = "shopping"
	CategoryServices  Category = "services"
)

func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryShopping,
		CategoryServices,
	}
}

func (c Category) String() string {
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll, nil
	case "food":
		return CategoryFood, nil
	case "transport":
		return CategoryTransport, nil
	case "housing", "realestate", "real-estate":
		return CategoryHousing, nil
	case "shopping":
		return CategoryShopping, nil
	case "services":
		return CategoryServices, nil
	}

	return "", failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown category %q", s),
		failure.WithCode(errcodes.InvalidCategory),
		failure.WithDescription("category must be one of all, food, transport, housing, shopping, services"),
	)
}
