package rest_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"deal_feed/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestDealLenientFields(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		input     string
		total     *string
		expiresAt *string
	}{
		{
			name:      "Regular values",
			input:     `{"quantityTotal": 10, "expiresAt": "2026-03-15T06:00:00Z"}`,
			total:     ptr("10"),
			expiresAt: ptr("2026-03-15T06:00:00Z"),
		},
		{
			name:      "Quoted number and numeric timestamp",
			input:     `{"quantityTotal": "10", "expiresAt": 1773554400}`,
			total:     ptr("10"),
			expiresAt: ptr("1773554400"),
		},
		{
			name:      "Fraction and object",
			input:     `{"quantityTotal": 2.5, "expiresAt": {"at": 1}}`,
			total:     ptr("2.5"),
			expiresAt: ptr(`{"at": 1}`),
		},
		{
			name:  "Nulls",
			input: `{"quantityTotal": null, "expiresAt": null}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var deal rest.Deal
			rq.NoError(json.Unmarshal([]byte(tc.input), &deal))

			if tc.total == nil {
				rq.Nil(deal.QuantityTotal)
			} else {
				rq.Equal(*tc.total, string(*deal.QuantityTotal))
			}

			if tc.expiresAt == nil {
				rq.Nil(deal.ExpiresAt)
			} else {
				rq.Equal(*tc.expiresAt, deal.ExpiresAt.String())
			}
		})
	}
}

func TestQuantityInt(t *testing.T) {
	rq := require.New(t)

	n, ok := rest.Quantity("10").Int()
	rq.True(ok)
	rq.Equal(10, n)

	n, ok = rest.Quantity(" 7 ").Int()
	rq.True(ok)
	rq.Equal(7, n)

	for _, bad := range []string{"2.5", "ten", "", "[1]", "true"} {
		_, ok = rest.Quantity(bad).Int()
		rq.False(ok, bad)
	}
}

func ptr(s string) *string { return &s }
