package dealsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deal_feed/internal/domain"
	"deal_feed/internal/infrastructure/dealsapi"
	"deal_feed/pkg/contextx"
	"deal_feed/pkg/errcodes"
)

const pageJSON = `{
	"deals": [
		{
			"id": "burger",
			"title": "50% Off Burger",
			"description": "Gourmet burger meal",
			"priceOriginal": "120.00",
			"priceDeal": 60,
			"currency": "MAD",
			"expiresAt": "2026-03-15T06:00:00Z",
			"merchantName": "Burger Lab",
			"sellerId": "u1",
			"quantityTotal": 10,
			"quantityClaimed": 3
		},
		{
			"id": "studio",
			"title": "Studio Marrakech",
			"priceOriginal": "800.00",
			"priceDeal": "abc",
			"expiresAt": "not a date",
			"startsAt": null,
			"merchantName": "",
			"sellerId": "u2"
		}
	]
}`

func newClient(t *testing.T, url, token string) *dealsapi.Client {
	t.Helper()

	client, err := dealsapi.NewClient(dealsapi.Config{
		BaseURL: url,
		Token:   token,
		Timeout: time.Second,
	})
	require.NoError(t, err)

	return client
}

func TestListDeals(t *testing.T) {
	rq := require.New(t)

	var gotPath, gotSkip, gotTake string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSkip = r.URL.Query().Get("skip")
		gotTake = r.URL.Query().Get("take")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pageJSON))
	}))
	defer srv.Close()

	deals, err := newClient(t, srv.URL+"/api/", "").ListDeals(context.Background(), 20, 10)

	rq.NoError(err)
	rq.Equal("/api/deals", gotPath)
	rq.Equal("20", gotSkip)
	rq.Equal("10", gotTake)
	rq.Len(deals, 2)

	burger := deals[0]
	rq.Equal("burger", burger.ID)
	rq.Equal("120.00", *burger.PriceOriginal)
	rq.Equal("60", *burger.PriceDeal)
	rq.Equal(time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC), burger.ExpiresAt.UTC())
	rq.Equal("Burger Lab", *burger.MerchantName)
	rq.Equal(10, *burger.QuantityTotal)
	rq.Equal(3, *burger.QuantityClaimed)

	studio := deals[1]
	rq.Equal("abc", *studio.PriceDeal)
	rq.Nil(studio.ExpiresAt)
	rq.Nil(studio.StartsAt)
	rq.Nil(studio.MerchantName)
	rq.Nil(studio.QuantityTotal)
}

const malformedPageJSON = `{
	"deals": [
		{"id": "good", "title": "Good", "quantityTotal": 10, "quantityClaimed": 4},
		{
			"id": "odd",
			"title": "Odd",
			"quantityTotal": "10",
			"quantityClaimed": 2.5,
			"expiresAt": 1773554400,
			"startsAt": {"at": "tomorrow"}
		},
		{"id": "worse", "title": "Worse", "quantityTotal": [1], "quantityClaimed": true, "expiresAt": false}
	]
}`

func TestListDealsMalformedFields(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(malformedPageJSON))
	}))
	defer srv.Close()

	deals, err := newClient(t, srv.URL, "").ListDeals(context.Background(), 0, 20)

	rq.NoError(err)
	rq.Len(deals, 3)

	good := deals[0]
	rq.Equal("good", good.ID)
	rq.Equal(10, *good.QuantityTotal)
	rq.Equal(4, *good.QuantityClaimed)

	odd := deals[1]
	rq.Equal("odd", odd.ID)
	rq.Equal(10, *odd.QuantityTotal)
	rq.Nil(odd.QuantityClaimed)
	rq.Nil(odd.ExpiresAt)
	rq.Nil(odd.StartsAt)

	worse := deals[2]
	rq.Equal("worse", worse.ID)
	rq.Nil(worse.QuantityTotal)
	rq.Nil(worse.QuantityClaimed)
	rq.Nil(worse.ExpiresAt)
}

func TestGetDeal(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/deals/burger":
			_, _ = w.Write([]byte(`{"deal": {"id": "burger", "title": "Burger", "expiresAt": "2026-03-15T06:00:00.000Z"}}`))
		case "/deals/empty":
			_, _ = w.Write([]byte(`{}`))
		case "/deals/broken":
			_, _ = w.Write([]byte(`{"deal": `))
		case "/deals/down":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"code": "BadGateway", "message": "try later"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, "")
	ctx := context.Background()

	deal, err := client.GetDeal(ctx, "burger")
	rq.NoError(err)
	rq.Equal("Burger", deal.Title)
	rq.NotNil(deal.ExpiresAt)

	testCases := []struct {
		id   string
		code string
	}{
		{id: "missing", code: errcodes.DealNotFound.String()},
		{id: "empty", code: errcodes.InvalidUpstreamResponse.String()},
		{id: "broken", code: errcodes.InvalidUpstreamResponse.String()},
		{id: "down", code: errcodes.UpstreamUnavailable.String()},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(*testing.T) {
			_, err := client.GetDeal(ctx, tc.id)

			code, ok := domain.GetCode(err)
			rq.True(ok, err)
			rq.Equal(tc.code, code.String())
		})
	}

	_, err = client.GetDeal(ctx, "down")
	rq.ErrorContains(err, "try later")
}

func TestBearerToken(t *testing.T) {
	rq := require.New(t)

	var gotAuth, gotTrace string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTrace = r.Header.Get(dealsapi.TraceIDHeader)

		if gotAuth != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		_, _ = w.Write([]byte(`{"deals": []}`))
	}))
	defer srv.Close()

	ctx := contextx.WithTraceID(context.Background(), "trace-1")

	deals, err := newClient(t, srv.URL, "secret").ListDeals(ctx, 0, 20)
	rq.NoError(err)
	rq.Empty(deals)
	rq.Equal("trace-1", gotTrace)

	_, err = newClient(t, srv.URL, "wrong").ListDeals(ctx, 0, 20)
	rq.True(domain.HasCode(err, errcodes.Unauthorized), err)

	_, err = newClient(t, srv.URL, "").ListDeals(ctx, 0, 20)
	rq.True(domain.HasCode(err, errcodes.Unauthorized), err)
	rq.Empty(gotAuth)
}

func TestNewClientInvalidURL(t *testing.T) {
	rq := require.New(t)

	_, err := dealsapi.NewClient(dealsapi.Config{BaseURL: "deals.local"})
	rq.Error(err)

	_, err = dealsapi.NewClient(dealsapi.Config{BaseURL: "http://%zz"})
	rq.Error(err)
}
