// Данный файл описывает wire-формат API сделок: {deals: Deal[]} и {deal: Deal}.
package rest

import (
	"bytes"
	"strconv"
	"strings"
)

// Deal Сделка в том виде, в каком её отдаёт backend
type Deal struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	PriceOriginal   *Amount    `json:"priceOriginal,omitempty"`
	PriceDeal       *Amount    `json:"priceDeal,omitempty"`
	Currency        string     `json:"currency"`
	ExpiresAt       *Timestamp `json:"expiresAt,omitempty"`
	StartsAt        *Timestamp `json:"startsAt,omitempty"`
	MerchantName    *string    `json:"merchantName,omitempty"`
	SellerID        string     `json:"sellerId"`
	QuantityTotal   *Quantity  `json:"quantityTotal,omitempty"`
	QuantityClaimed *Quantity  `json:"quantityClaimed,omitempty"`
}

// DealsPage Ответ списка сделок
type DealsPage struct {
	Deals []Deal `json:"deals"`
}

// DealEnvelope Ответ одной сделки
type DealEnvelope struct {
	Deal *Deal `json:"deal"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string

// Amount Денежная сумма. Backend присылает её то строкой ("120.00"), то
// числом (120), поэтому храним исходный текст без интерпретации.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if text, ok := rawText(b); ok {
		*a = Amount(text)
	}
	return nil
}

func (a Amount) String() string {
	return string(a)
}

// Quantity Количество в тираже. Ожидается целое число, но приходит и строкой
// ("10"), и дробью; разбор откладывается до Int.
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	if text, ok := rawText(b); ok {
		*q = Quantity(text)
	}
	return nil
}

// Int false для всего, что не является целым числом.
func (q Quantity) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(q)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Timestamp Момент времени в исходном виде: строка в одном из нескольких
// форматов, иногда число. Разбор на стороне потребителя.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if text, ok := rawText(b); ok {
		*t = Timestamp(text)
	}
	return nil
}

func (t Timestamp) String() string {
	return string(t)
}

// rawText текст JSON-значения: строка без кавычек, всё остальное как есть.
// Никогда не отвергает значение, чтобы одна битая сделка не ломала страницу.
// false для null.
func rawText(b []byte) (string, bool) {
	b = bytes.TrimSpace(b)

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", false
	}

	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			s = string(bytes.Trim(b, `"`))
		}
		return s, true
	}

	return string(b), true
}
