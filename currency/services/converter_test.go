package services

import (
	"context"
	"errors"
	"testing"

	"licensing-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRates struct {
	rate  decimal.Decimal
	err   error
	calls int
}

func (s *stubRates) GetRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	s.calls++
	return s.rate, s.err
}

func TestConvertBaseIsIdentity(t *testing.T) {
	stub := &stubRates{err: errors.New("network down")}
	conv := NewConverter("PLN", stub)
	amount := decimal.RequireFromString("1710.123")

	for _, target := range []string{"PLN", "pln", " Pln ", ""} {
		got, code, err := conv.ConvertFromBase(context.Background(), amount, target)
		require.NoError(t, err)
		assert.True(t, amount.Equal(got))
		assert.Equal(t, "PLN", code)
	}
	assert.Zero(t, stub.calls)
}

func TestConvertUsesRate(t *testing.T) {
	stub := &stubRates{rate: decimal.RequireFromString("0.2315")}
	conv := NewConverter("PLN", stub)

	got, code, err := conv.ConvertFromBase(context.Background(), decimal.NewFromInt(1710), "eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", code)
	assert.Equal(t, "395.87", got.String())
	assert.Equal(t, 1, stub.calls)
}

func TestConvertRejectsMalformedCode(t *testing.T) {
	conv := NewConverter("PLN", &stubRates{})
	_, _, err := conv.ConvertFromBase(context.Background(), decimal.NewFromInt(1), "EURO")
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))
}

func TestConvertPropagatesProviderError(t *testing.T) {
	conv := NewConverter("PLN", &stubRates{err: utils.NewUpstreamError("currency service unavailable", nil)})
	_, _, err := conv.ConvertFromBase(context.Background(), decimal.NewFromInt(1), "USD")
	assert.True(t, utils.IsKind(err, utils.KindUpstream))
}
