package pricing

import (
	"fmt"

	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/model"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// BlockCharge is the share of a bill billed in one tariff block.
type BlockCharge struct {
	ConsumptionKWh decimal.Decimal `json:"consumption_kwh"`
	Price          decimal.Decimal `json:"price"`
	Amount         decimal.Decimal `json:"amount"`
}

// Bill is an annual electricity bill estimate. Amounts are rounded to cents.
type Bill struct {
	TariffID       string          `json:"tariff"`
	ConsumptionKWh decimal.Decimal `json:"consumption_kwh"`
	FixedCharge    decimal.Decimal `json:"fixed_charge"`
	EnergyCharge   decimal.Decimal `json:"energy_charge"`
	Total          decimal.Decimal `json:"total"`
	Blocks         []BlockCharge   `json:"blocks"`
}

// EstimateBill prices an annual consumption against a block tariff: twelve
// monthly fixed charges plus each block filled in order. The last block takes
// whatever remains.
func EstimateBill(consumptionKWh float64, t catalog.Tariff) (Bill, error) {
	if consumptionKWh < 0 {
		return Bill{}, model.NewDomainError("estimate_bill", "consumption", model.ErrOutOfRange)
	}
	if err := t.Validate(); err != nil {
		return Bill{}, fmt.Errorf("tariff %s: %w", t.ID, err)
	}

	fixed := decimal.NewFromFloat(t.FixedMonthly).Mul(decimal.NewFromInt(monthsPerYear))
	remaining := decimal.NewFromFloat(consumptionKWh)
	previous := decimal.Zero
	energy := decimal.Zero
	blocks := make([]BlockCharge, 0, len(t.Blocks))

	for _, b := range t.Blocks {
		if !remaining.IsPositive() {
			break
		}
		price := decimal.NewFromFloat(b.Price)
		used := remaining
		if b.Limit != 0 {
			limit := decimal.NewFromFloat(b.Limit)
			used = decimal.Min(remaining, limit.Sub(previous))
			previous = limit
		}
		amount := used.Mul(price)
		energy = energy.Add(amount)
		remaining = remaining.Sub(used)
		blocks = append(blocks, BlockCharge{
			ConsumptionKWh: used,
			Price:          price,
			Amount:         amount.Round(2),
		})
	}

	return Bill{
		TariffID:       t.ID,
		ConsumptionKWh: decimal.NewFromFloat(consumptionKWh),
		FixedCharge:    fixed.Round(2),
		EnergyCharge:   energy.Round(2),
		Total:          fixed.Add(energy).Round(2),
		Blocks:         blocks,
	}, nil
}

// AnnualSavings is the bill reduction from buying only gridImportKWh instead
// of the full consumption.
func AnnualSavings(consumptionKWh, gridImportKWh float64, t catalog.Tariff) (decimal.Decimal, error) {
	before, err := EstimateBill(consumptionKWh, t)
	if err != nil {
		return decimal.Zero, err
	}
	after, err := EstimateBill(gridImportKWh, t)
	if err != nil {
		return decimal.Zero, err
	}
	return before.Total.Sub(after.Total), nil
}
