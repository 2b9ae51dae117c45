package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/model"
)

func residentialLow(t *testing.T) catalog.Tariff {
	t.Helper()
	tariff, err := catalog.Default().Tariff("residential_low")
	require.NoError(t, err)
	return tariff
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEstimateBill_WithinBlocks(t *testing.T) {
	bill, err := EstimateBill(350, residentialLow(t))
	require.NoError(t, err)

	assert.True(t, dec("420").Equal(bill.FixedCharge), bill.FixedCharge.String())
	assert.True(t, dec("410.485").Round(2).Equal(bill.EnergyCharge), bill.EnergyCharge.String())
	assert.True(t, dec("830.49").Equal(bill.Total), bill.Total.String())
	require.Len(t, bill.Blocks, 4)
	assert.True(t, dec("50").Equal(bill.Blocks[3].ConsumptionKWh))
}

func TestEstimateBill_LastBlockTakesRemainder(t *testing.T) {
	bill, err := EstimateBill(4500, residentialLow(t))
	require.NoError(t, err)

	require.Len(t, bill.Blocks, 5)
	assert.True(t, dec("4100").Equal(bill.Blocks[4].ConsumptionKWh))
	assert.True(t, dec("7309.89").Equal(bill.Blocks[4].Amount))
	assert.True(t, dec("8218.81").Equal(bill.Total), bill.Total.String())
}

func TestEstimateBill_ZeroConsumption(t *testing.T) {
	bill, err := EstimateBill(0, residentialLow(t))
	require.NoError(t, err)
	assert.Empty(t, bill.Blocks)
	assert.True(t, dec("420").Equal(bill.Total))
}

func TestEstimateBill_Rejects(t *testing.T) {
	_, err := EstimateBill(-1, residentialLow(t))
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	_, err = EstimateBill(100, catalog.Tariff{ID: "empty"})
	assert.Error(t, err)
}

func TestAnnualSavings(t *testing.T) {
	tariff := residentialLow(t)
	saved, err := AnnualSavings(4500, 350, tariff)
	require.NoError(t, err)
	assert.True(t, dec("7388.32").Equal(saved), saved.String())

	none, err := AnnualSavings(4500, 4500, tariff)
	require.NoError(t, err)
	assert.True(t, none.IsZero())
}

func TestSubsidyAmount(t *testing.T) {
	s := catalog.Subsidy{Rate: 0.2, MaxAmount: 30000}

	assert.True(t, dec("20000").Equal(SubsidyAmount(100000, s)))
	assert.True(t, dec("30000").Equal(SubsidyAmount(200000, s)))
	assert.True(t, SubsidyAmount(0, s).IsZero())
}

func TestSubsidyFor(t *testing.T) {
	c := catalog.Default()

	assert.True(t, dec("20000").Equal(SubsidyFor(c, "pv_installation", 100000)))
	assert.True(t, dec("25000").Equal(SubsidyFor(c, "battery_storage", 500000)))
	assert.True(t, SubsidyFor(c, "wind_turbine", 100000).IsZero())
}
