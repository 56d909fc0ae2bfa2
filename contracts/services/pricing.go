package services

import (
	"time"

	"licensing-backend/db/models"
	"licensing-backend/utils"

	"github.com/shopspring/decimal"
)

const (
	MinContractDays = 3
	MaxContractDays = 30

	MinUpdateYears = 1
	MaxUpdateYears = 3
)

var (
	// each year of updates past the first
	updateYearSurcharge   = decimal.NewFromInt(1000)
	returningClientFactor = decimal.RequireFromString("0.95")
	hundred               = decimal.NewFromInt(100)
)

// ContractDays counts whole days between start and end, truncating any
// partial day.
func ContractDays(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

func ValidateDuration(start, end time.Time) error {
	days := ContractDays(start, end)
	if days < MinContractDays || days > MaxContractDays {
		return utils.NewBadRequestError("contract must last between %d and %d days, got %d", MinContractDays, MaxContractDays, days)
	}
	return nil
}

func ValidateUpdateYears(years int) error {
	if years < MinUpdateYears || years > MaxUpdateYears {
		return utils.NewBadRequestError("yearsOfUpdates must be between %d and %d", MinUpdateYears, MaxUpdateYears)
	}
	return nil
}

// Quote is a computed contract price and whether the discount took part.
type Quote struct {
	Price           decimal.Decimal
	DiscountApplied bool
}

// QuotePrice prices a licence. The discount counts only when start falls in
// its window; the returning client reduction is applied on top of it.
func QuotePrice(basePrice decimal.Decimal, years int, discount *models.Discount, start time.Time, returning bool) Quote {
	price := basePrice.Add(updateYearSurcharge.Mul(decimal.NewFromInt(int64(years - 1))))

	applied := false
	if discount != nil && discount.ActiveAt(start) {
		pct := decimal.NewFromInt(int64(discount.Percentage))
		price = price.Sub(price.Mul(pct).Div(hundred))
		applied = true
	}
	if returning {
		price = price.Mul(returningClientFactor)
	}

	return Quote{Price: utils.RoundMoney(price), DiscountApplied: applied}
}
