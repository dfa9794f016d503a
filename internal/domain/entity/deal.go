package entity

import "time"

// Deal сделка из ленты. Клиент её только читает; любое поле кроме ID может
// отсутствовать или прийти битым.
type Deal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Цены хранятся десятичными строками в одной валюте. priceDeal <= priceOriginal
	// не проверяется.
	PriceOriginal *string `json:"priceOriginal,omitempty"`
	PriceDeal     *string `json:"priceDeal,omitempty"`
	Currency      string  `json:"currency"`

	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	StartsAt  *time.Time `json:"startsAt,omitempty"`

	MerchantName *string `json:"merchantName,omitempty"`
	SellerID     string  `json:"sellerId"`

	QuantityTotal   *int `json:"quantityTotal,omitempty"`
	QuantityClaimed *int `json:"quantityClaimed,omitempty"`
}

// SearchText склейка полей, по которой работают поиск и категории.
func (d Deal) SearchText() string {
	merchant := ""
	if d.MerchantName != nil {
		merchant = *d.MerchantName
	}

	return d.Title + " " + d.Description + " " + merchant
}
