package services

import (
	"context"
	"regexp"

	"licensing-backend/utils"

	"github.com/shopspring/decimal"
)

// RateProvider yields the price of one unit of base in target.
type RateProvider interface {
	GetRate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

// RatesFetcher is the upstream quote source.
type RatesFetcher interface {
	LatestRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency normalizes code and checks it is three letters.
func ValidateCurrency(code string) (string, error) {
	code = utils.NormalizeCurrency(code)
	if !currencyCode.MatchString(code) {
		return "", utils.NewBadRequestError("invalid currency code %q", code)
	}
	return code, nil
}

// OfflineFetcher stands in for the upstream API when no key is configured, so
// only cached and last-known rates are served.
type OfflineFetcher struct{}

func (OfflineFetcher) LatestRates(context.Context, string) (map[string]decimal.Decimal, error) {
	return nil, utils.NewUpstreamError("exchange rate service is not configured", nil)
}
