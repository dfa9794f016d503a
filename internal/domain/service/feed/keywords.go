package feed

import (
	"regexp"
	"strings"

	"deal_feed/internal/domain/value"
)

// Категория определяется эвристикой по тексту сделки: достаточно вхождения
// любого ключевого слова с начала слова ("burgers" подходит, "fried" для ride нет).
// Короткие слова, которые легко встретить внутри других (spa, car, bus), ищутся
// только целиком. Текст к этому моменту уже в нижнем регистре.
//
//nolint:gochecknoglobals
var categoryKeywords = map[value.Category]*regexp.Regexp{
	value.CategoryFood: keywords(
		`restaurant`, `food`, `café`, `cafe`, `coffee`, `pizza`, `burger`, `sushi`, `meal`, `lunch`, `dinner`,
		`breakfast`),
	value.CategoryTransport: keywords(
		`transport`, `taxi`, `uber\b`, `cars?\b`, `bus(?:es)?\b`, `trains?\b`, `flight`, `airport`,
		`transfer`, `bike`, `scooter`, `parking`, `rides?\b`),
	value.CategoryHousing: keywords(
		`apartment`, `studio`, `rooms?\b`, `house`, `housing`, `real estate`, `villa`, `riad`, `condo`, `hostel`,
		`hotel`, `lodging`),
	value.CategoryShopping: keywords(
		`shop`, `store`, `fashion`, `clothing`, `clothes`, `shoes`, `electronics`, `mall\b`, `boutique`, `outlet`,
		`jewelry`),
	value.CategoryServices: keywords(
		`service`, `spas?\b`, `massage`, `salon`, `haircut`, `beauty`, `cleaning`, `repair`, `laundry`, `wellness`,
		`yoga`, `gyms?\b`, `fitness`),
}

// keywords каждое слово должно начинаться с границы слова.
func keywords(words ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:` + strings.Join(words, `|`) + `)`)
}

// MatchesCategory всё, что не all, проверяется по словарю; для all всегда true.
func MatchesCategory(foldedText string, category value.Category) bool {
	re, ok := categoryKeywords[category]
	if !ok {
		return true
	}

	return re.MatchString(foldedText)
}
