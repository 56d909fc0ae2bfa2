package services

import (
	"context"

	"licensing-backend/utils"

	"github.com/shopspring/decimal"
)

// Converter turns amounts held in the base currency into another currency.
type Converter struct {
	base  string
	rates RateProvider
}

func NewConverter(base string, rates RateProvider) *Converter {
	return &Converter{base: utils.NormalizeCurrency(base), rates: rates}
}

func (c *Converter) Base() string {
	return c.base
}

// ConvertFromBase returns amount expressed in target together with the
// resolved currency code. An empty target, or the base itself, returns amount
// unchanged without consulting the rate provider.
func (c *Converter) ConvertFromBase(ctx context.Context, amount decimal.Decimal, target string) (decimal.Decimal, string, error) {
	target = utils.NormalizeCurrency(target)
	if target == "" || target == c.base {
		return amount, c.base, nil
	}

	target, err := ValidateCurrency(target)
	if err != nil {
		return decimal.Zero, "", err
	}

	rate, err := c.rates.GetRate(ctx, c.base, target)
	if err != nil {
		return decimal.Zero, "", err
	}
	return utils.RoundMoney(amount.Mul(rate)), target, nil
}
