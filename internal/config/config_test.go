package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/model"
	"pv-battery-sizing/internal/scoring"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Minimal(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
parameters:
  annual_consumption: 6000
  city: Marrakech
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, PricingGeneric, cfg.Pricing.Source)
	assert.Equal(t, "Marrakech", cfg.Parameters.City)

	res, err := cfg.Resolve(catalog.Default())
	require.NoError(t, err)

	p := res.Parameters
	assert.InDelta(t, 6000.0, p.AnnualConsumptionKWh, 1e-9)
	assert.InDelta(t, 2050.0, p.IrradiationKWhM2, 1e-9)
	assert.InDelta(t, 0.65, p.DayFraction, 1e-12)
	assert.Equal(t, model.TechLithium, p.BatteryTech)
	assert.Equal(t, scoring.DefaultCostModel(), res.Costs)
	assert.Equal(t, scoring.DefaultWeights(), res.Weights)
}

func TestLoad_CatalogFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "extra.yaml", `
batteries:
  sodium:
    name: Sodium-ion
    dod: 0.8
    efficiency: 0.9
    cost_per_kwh: 2500
`)
	path := writeFile(t, dir, "config.yaml", `
catalog_file: extra.yaml
parameters:
  battery_tech: sodium
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "extra.yaml"), cfg.CatalogFile)

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	res, err := cfg.Resolve(cat)
	require.NoError(t, err)
	assert.Equal(t, "sodium", res.Parameters.BatteryTech)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "a.yaml", "pricing:\n  source: spot\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "b.yaml", "weights:\n  grid_reduction: 0.5\n  cost_efficiency: 0.1\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "c.yaml", "pricing:\n  pv_cost_per_kwp: -1\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "d.yaml", "parameters: [1, 2]\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveParameters_Shortcuts(t *testing.T) {
	cat := catalog.Default()

	p, err := ResolveParameters(ParametersConfig{
		Profile:    "high_consumption",
		City:       "dakhla",
		ModuleType: "thin_film",
	}, cat)
	require.NoError(t, err)
	assert.InDelta(t, 8000.0, p.AnnualConsumptionKWh, 1e-9)
	assert.InDelta(t, 0.70, p.DayFraction, 1e-12)
	assert.InDelta(t, 2350.0, p.IrradiationKWhM2, 1e-9)
	assert.InDelta(t, 0.11, p.ModuleEfficiency, 1e-12)

	// Explicit values win over shortcuts.
	explicit := ParametersConfig{
		Profile:              "rural",
		City:                 "dakhla",
		AnnualConsumptionKWh: Float(3300),
		IrradiationKWhM2:     Float(1500),
	}
	p, err = ResolveParameters(explicit, cat)
	require.NoError(t, err)
	assert.InDelta(t, 3300.0, p.AnnualConsumptionKWh, 1e-9)
	assert.InDelta(t, 0.60, p.DayFraction, 1e-12)
	assert.InDelta(t, 1500.0, p.IrradiationKWhM2, 1e-9)
}

func TestResolveParameters_Errors(t *testing.T) {
	cat := catalog.Default()

	_, err := ResolveParameters(ParametersConfig{City: "Paris"}, cat)
	assert.ErrorIs(t, err, model.ErrUnknownCity)

	_, err = ResolveParameters(ParametersConfig{ModuleType: "perovskite"}, cat)
	assert.ErrorIs(t, err, model.ErrUnknownModule)

	_, err = ResolveParameters(ParametersConfig{Profile: "office"}, cat)
	assert.ErrorIs(t, err, model.ErrUnknownProfile)

	_, err = ResolveParameters(ParametersConfig{BatteryTech: "flywheel"}, cat)
	assert.ErrorIs(t, err, model.ErrUnknownTechnology)

	_, err = ResolveParameters(ParametersConfig{DayFraction: Float(2)}, cat)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}

func TestResolveParameters_ExplicitZero(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name  string
		pc    ParametersConfig
		field string
	}{
		{"zero consumption", ParametersConfig{AnnualConsumptionKWh: Float(0)}, "annual_consumption"},
		{"zero consumption over profile", ParametersConfig{Profile: "rural", AnnualConsumptionKWh: Float(0)}, "annual_consumption"},
		{"zero irradiation", ParametersConfig{IrradiationKWhM2: Float(0)}, "irradiation"},
		{"zero irradiation over city", ParametersConfig{City: "Agadir", IrradiationKWhM2: Float(0)}, "irradiation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveParameters(tt.pc, cat)
			require.ErrorIs(t, err, model.ErrOutOfRange)

			var de *model.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
		})
	}

	// Zero is a legitimate value for these fields and is kept.
	p, err := ResolveParameters(ParametersConfig{
		AutonomyHours:  Float(0),
		SystemLosses:   Float(0),
		DayFraction:    Float(0),
		CoverageTarget: Float(0),
	}, cat)
	require.NoError(t, err)
	assert.Zero(t, p.AutonomyHours)
	assert.Zero(t, p.SystemLosses)
	assert.Zero(t, p.DayFraction)
	assert.Zero(t, p.CoverageTarget)
	assert.InDelta(t, 4500.0, p.AnnualConsumptionKWh, 1e-9)
}

func TestLoad_ExplicitZero(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(writeFile(t, dir, "zero.yaml", `
parameters:
  autonomy_hours: 0
  system_losses: 0
`))
	require.NoError(t, err)
	res, err := cfg.Resolve(catalog.Default())
	require.NoError(t, err)
	assert.Zero(t, res.Parameters.AutonomyHours)
	assert.Zero(t, res.Parameters.SystemLosses)
	assert.InDelta(t, 0.65, res.Parameters.DayFraction, 1e-12)

	cfg, err = Load(writeFile(t, dir, "consumption.yaml", "parameters:\n  annual_consumption: 0\n"))
	require.NoError(t, err)
	_, err = cfg.Resolve(catalog.Default())
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}

func TestPricingConfig_CostModel(t *testing.T) {
	cat := catalog.Default()

	generic, err := PricingConfig{}.CostModel(cat, "", model.TechLithium)
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultCostModel(), generic)

	local, err := PricingConfig{Source: PricingCatalog}.CostModel(cat, "polycrystalline", model.TechLeadAcid)
	require.NoError(t, err)
	assert.Equal(t, scoring.CostModel{
		PVCostPerKWp:      5500,
		BatteryCostPerKWh: 1800,
		MaxReferenceCost:  DefaultCatalogMaxReferenceCost,
	}, local)

	overridden, err := PricingConfig{Source: PricingCatalog, MaxReferenceCost: Float(90000)}.CostModel(cat, "", model.TechLithium)
	require.NoError(t, err)
	assert.InDelta(t, 7000.0, overridden.PVCostPerKWp, 1e-9)
	assert.InDelta(t, 3500.0, overridden.BatteryCostPerKWh, 1e-9)
	assert.InDelta(t, 90000.0, overridden.MaxReferenceCost, 1e-9)

	free, err := PricingConfig{BatteryCostPerKWh: Float(0)}.CostModel(cat, "", model.TechLithium)
	require.NoError(t, err)
	assert.Zero(t, free.BatteryCostPerKWh)
	assert.InDelta(t, 800.0, free.PVCostPerKWp, 1e-9)

	_, err = PricingConfig{MaxReferenceCost: Float(0)}.CostModel(cat, "", model.TechLithium)
	assert.Error(t, err)

	_, err = PricingConfig{Source: PricingCatalog}.CostModel(cat, "perovskite", model.TechLithium)
	assert.ErrorIs(t, err, model.ErrUnknownModule)
}

func TestParametersConfig_Merge(t *testing.T) {
	base := ParametersConfig{
		City:          "Agadir",
		AutonomyHours: Float(6),
		SystemLosses:  Float(0.1),
		BatteryTech:   model.TechLithium,
	}

	out := base.Merge(ParametersConfig{AutonomyHours: Float(0), BatteryTech: model.TechLeadAcid})
	require.NotNil(t, out.AutonomyHours)
	assert.Zero(t, *out.AutonomyHours)
	assert.Equal(t, model.TechLeadAcid, out.BatteryTech)
	assert.Equal(t, base.SystemLosses, out.SystemLosses)
	assert.Equal(t, "Agadir", out.City)

	assert.Equal(t, base, base.Merge(ParametersConfig{}))

	// A new city drops the base irradiation unless the override sets one.
	withIrr := base
	withIrr.IrradiationKWhM2 = Float(1900)
	out = withIrr.Merge(ParametersConfig{City: "Dakhla"})
	assert.Equal(t, "Dakhla", out.City)
	assert.Nil(t, out.IrradiationKWhM2)
	out = withIrr.Merge(ParametersConfig{City: "Dakhla", IrradiationKWhM2: Float(2000)})
	assert.InDelta(t, 2000.0, *out.IrradiationKWhM2, 1e-9)
}

func TestLoad_ExampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "residential_low", cfg.Tariff)

	res, err := cfg.Resolve(catalog.Default())
	require.NoError(t, err)
	assert.InDelta(t, 4500.0, res.Parameters.AnnualConsumptionKWh, 1e-9)
	assert.InDelta(t, 2050.0, res.Parameters.IrradiationKWhM2, 1e-9)
	assert.InDelta(t, 0.20, res.Parameters.ModuleEfficiency, 1e-12)
	assert.InDelta(t, 7000.0, res.Costs.PVCostPerKWp, 1e-9)
	assert.InDelta(t, 3500.0, res.Costs.BatteryCostPerKWh, 1e-9)
}
