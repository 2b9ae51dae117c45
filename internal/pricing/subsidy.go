package pricing

import (
	"pv-battery-sizing/internal/catalog"

	"github.com/shopspring/decimal"
)

// SubsidyAmount is min(investment * rate, max_amount).
func SubsidyAmount(investment float64, s catalog.Subsidy) decimal.Decimal {
	if investment <= 0 {
		return decimal.Zero
	}
	amount := decimal.NewFromFloat(investment).Mul(decimal.NewFromFloat(s.Rate))
	return decimal.Min(amount, decimal.NewFromFloat(s.MaxAmount)).Round(2)
}

// SubsidyFor looks the subsidy up by id. Unknown ids grant nothing.
func SubsidyFor(c *catalog.Catalog, id string, investment float64) decimal.Decimal {
	s, err := c.Subsidy(id)
	if err != nil {
		return decimal.Zero
	}
	return SubsidyAmount(investment, s)
}
