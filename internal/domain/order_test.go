package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seller-console/internal/domain"
)

func TestParsePaymentMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want domain.PaymentMode
	}{
		{"COD", domain.PaymentCOD},
		{"Prepaid", domain.PaymentPrepaid},
		{"", domain.PaymentPrepaid},
		{"cod", domain.PaymentPrepaid}, // the form value is case-exact
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, domain.ParsePaymentMode(tc.in), "input %q", tc.in)
	}
}

func TestBucket_Valid(t *testing.T) {
	t.Parallel()

	for _, b := range []domain.Bucket{
		domain.BucketNew, domain.BucketReadyToShip, domain.BucketInTransit,
		domain.BucketDelivered, domain.BucketRTO, domain.BucketCancelled,
	} {
		require.True(t, b.Valid())
	}
	require.False(t, domain.Bucket(42).Valid())
	require.False(t, domain.Bucket(-1).Valid())
}
