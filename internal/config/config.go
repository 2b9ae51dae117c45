package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/model"
	"pv-battery-sizing/internal/scoring"

	"gopkg.in/yaml.v3"
)

// Pricing sources.
const (
	PricingGeneric = "generic"
	PricingCatalog = "catalog"
)

// DefaultModuleType prices the array when pricing comes from the catalog and
// no module type is named.
const DefaultModuleType = "monocrystalline"

// DefaultCatalogMaxReferenceCost is the cost-efficiency reference for catalog
// (local currency) pricing.
const DefaultCatalogMaxReferenceCost = 150000

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: merge a technology catalog file over the built-in one.
	CatalogFile string           `yaml:"catalog_file"`
	Parameters  ParametersConfig `yaml:"parameters"`
	Pricing     PricingConfig    `yaml:"pricing"`
	Weights     scoring.Weights  `yaml:"weights"`
	// Optional: tariff and subsidy used to report savings.
	Tariff  string `yaml:"tariff"`
	Subsidy string `yaml:"subsidy"`
}

// ParametersConfig is the caller's view of SystemParameters. A nil field is
// unset: it is filled from a catalog shortcut (a city supplies the
// irradiation, a module type the module efficiency, a profile the consumption
// and day fraction) or from DefaultParameters. A field set to 0 stays 0 and is
// validated like any other value.
type ParametersConfig struct {
	AnnualConsumptionKWh *float64 `json:"annual_consumption,omitempty" yaml:"annual_consumption"`
	DayFraction          *float64 `json:"day_fraction,omitempty" yaml:"day_fraction"`
	CoverageTarget       *float64 `json:"pv_coverage_target,omitempty" yaml:"pv_coverage_target"`
	IrradiationKWhM2     *float64 `json:"irradiation,omitempty" yaml:"irradiation"`
	PerformanceRatio     *float64 `json:"performance_ratio,omitempty" yaml:"performance_ratio"`
	ModuleEfficiency     *float64 `json:"module_efficiency,omitempty" yaml:"module_efficiency"`
	SystemLosses         *float64 `json:"system_losses,omitempty" yaml:"system_losses"`
	AutonomyHours        *float64 `json:"autonomy_hours,omitempty" yaml:"autonomy_hours"`
	BatteryTech          string   `json:"battery_tech,omitempty" yaml:"battery_tech"`

	City       string `json:"city,omitempty" yaml:"city"`
	ModuleType string `json:"module_type,omitempty" yaml:"module_type"`
	Profile    string `json:"profile,omitempty" yaml:"profile"`
}

// Float returns a pointer to v, for setting ParametersConfig fields.
func Float(v float64) *float64 { return &v }

// Apply overlays the set fields of pc onto p.
func (pc ParametersConfig) Apply(p model.SystemParameters) model.SystemParameters {
	set := func(dst, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.AnnualConsumptionKWh, pc.AnnualConsumptionKWh)
	set(&p.DayFraction, pc.DayFraction)
	set(&p.CoverageTarget, pc.CoverageTarget)
	set(&p.IrradiationKWhM2, pc.IrradiationKWhM2)
	set(&p.PerformanceRatio, pc.PerformanceRatio)
	set(&p.ModuleEfficiency, pc.ModuleEfficiency)
	set(&p.SystemLosses, pc.SystemLosses)
	set(&p.AutonomyHours, pc.AutonomyHours)
	if pc.BatteryTech != "" {
		p.BatteryTech = pc.BatteryTech
	}
	return p
}

// Merge overlays the set fields of override onto pc. A shortcut named by
// override clears the values of pc it supplies, unless override also sets
// them explicitly.
func (pc ParametersConfig) Merge(override ParametersConfig) ParametersConfig {
	out := pc
	if override.City != "" {
		out.City = override.City
		out.IrradiationKWhM2 = nil
	}
	if override.ModuleType != "" {
		out.ModuleType = override.ModuleType
		out.ModuleEfficiency = nil
	}
	if override.Profile != "" {
		out.Profile = override.Profile
		out.AnnualConsumptionKWh = nil
		out.DayFraction = nil
	}

	pick := func(base, v *float64) *float64 {
		if v != nil {
			return v
		}
		return base
	}
	out.AnnualConsumptionKWh = pick(out.AnnualConsumptionKWh, override.AnnualConsumptionKWh)
	out.DayFraction = pick(out.DayFraction, override.DayFraction)
	out.CoverageTarget = pick(out.CoverageTarget, override.CoverageTarget)
	out.IrradiationKWhM2 = pick(out.IrradiationKWhM2, override.IrradiationKWhM2)
	out.PerformanceRatio = pick(out.PerformanceRatio, override.PerformanceRatio)
	out.ModuleEfficiency = pick(out.ModuleEfficiency, override.ModuleEfficiency)
	out.SystemLosses = pick(out.SystemLosses, override.SystemLosses)
	out.AutonomyHours = pick(out.AutonomyHours, override.AutonomyHours)
	if override.BatteryTech != "" {
		out.BatteryTech = override.BatteryTech
	}
	return out
}

// PricingConfig selects the cost model. Set prices override the source's.
type PricingConfig struct {
	Source            string   `json:"source,omitempty" yaml:"source"`
	PVCostPerKWp      *float64 `json:"pv_cost_per_kwp,omitempty" yaml:"pv_cost_per_kwp"`
	BatteryCostPerKWh *float64 `json:"battery_cost_per_kwh,omitempty" yaml:"battery_cost_per_kwh"`
	MaxReferenceCost  *float64 `json:"max_reference_cost,omitempty" yaml:"max_reference_cost"`
}

// Resolved is a configuration with every catalog reference looked up.
type Resolved struct {
	Parameters model.SystemParameters
	Costs      scoring.CostModel
	Weights    scoring.Weights
}

// DefaultParameters is a typical urban household in Agadir.
func DefaultParameters() model.SystemParameters {
	return model.SystemParameters{
		AnnualConsumptionKWh: 4500,
		DayFraction:          0.65,
		CoverageTarget:       0.7,
		IrradiationKWhM2:     1850,
		PerformanceRatio:     0.78,
		ModuleEfficiency:     0.19,
		SystemLosses:         0.10,
		AutonomyHours:        6,
		BatteryTech:          model.TechLithium,
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Pricing.Source == "" {
		c.Pricing.Source = PricingGeneric
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config and resolves catalog_file, but does not
// validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.CatalogFile != "" && !filepath.IsAbs(c.CatalogFile) {
		// Relative to the config file first, then to the cwd.
		cand := filepath.Join(filepath.Dir(path), c.CatalogFile)
		if _, err := os.Stat(cand); err == nil {
			c.CatalogFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch c.Pricing.Source {
	case "", PricingGeneric, PricingCatalog:
	default:
		return fmt.Errorf("pricing.source %q must be %q or %q", c.Pricing.Source, PricingGeneric, PricingCatalog)
	}
	for _, v := range []*float64{c.Pricing.PVCostPerKWp, c.Pricing.BatteryCostPerKWh, c.Pricing.MaxReferenceCost} {
		if v != nil && *v < 0 {
			return errors.New("pricing values must be >= 0")
		}
	}
	if !c.Weights.IsZero() {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("weights invalid: %w", err)
		}
	}
	return nil
}

// Catalog opens catalog_file, or the built-in catalog when none is set.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	return catalog.Open(c.CatalogFile)
}

// Resolve looks up every catalog reference and fills defaults.
func (c *Config) Resolve(cat *catalog.Catalog) (Resolved, error) {
	p, err := ResolveParameters(c.Parameters, cat)
	if err != nil {
		return Resolved{}, err
	}
	costs, err := c.Pricing.CostModel(cat, c.Parameters.ModuleType, p.BatteryTech)
	if err != nil {
		return Resolved{}, err
	}
	w := c.Weights
	if w.IsZero() {
		w = scoring.DefaultWeights()
	}
	return Resolved{Parameters: p, Costs: costs, Weights: w}, nil
}

// ResolveParameters starts from DefaultParameters, applies the catalog
// shortcuts, then the explicitly set fields, and validates the result.
// Out-of-range values (a zero consumption or irradiation included) are
// reported, never replaced by defaults.
func ResolveParameters(pc ParametersConfig, cat *catalog.Catalog) (model.SystemParameters, error) {
	p := DefaultParameters()
	if pc.Profile != "" {
		prof, err := cat.Profile(pc.Profile)
		if err != nil {
			return model.SystemParameters{}, err
		}
		p.AnnualConsumptionKWh = prof.AnnualConsumptionKWh
		p.DayFraction = prof.DayFraction
	}
	if pc.City != "" {
		city, err := cat.City(pc.City)
		if err != nil {
			return model.SystemParameters{}, err
		}
		p.IrradiationKWhM2 = city.Irradiation
	}
	if pc.ModuleType != "" {
		m, err := cat.Module(pc.ModuleType)
		if err != nil {
			return model.SystemParameters{}, err
		}
		p.ModuleEfficiency = m.EfficiencyTypical
	}

	p = pc.Apply(p)
	if err := p.Validate(); err != nil {
		return model.SystemParameters{}, err
	}
	if _, err := cat.Battery(p.BatteryTech); err != nil {
		return model.SystemParameters{}, err
	}
	return p, nil
}

// CostModel builds the scoring cost model. Set prices always win, a set 0
// included; the catalog source fills the rest from the module type and
// battery technology.
func (pc PricingConfig) CostModel(cat *catalog.Catalog, moduleType, batteryTech string) (scoring.CostModel, error) {
	out := scoring.DefaultCostModel()
	if pc.Source == PricingCatalog {
		if moduleType == "" {
			moduleType = DefaultModuleType
		}
		m, err := cat.Module(moduleType)
		if err != nil {
			return scoring.CostModel{}, err
		}
		b, err := cat.Battery(batteryTech)
		if err != nil {
			return scoring.CostModel{}, err
		}
		out = scoring.CostModel{
			PVCostPerKWp:      m.CostPerKWp,
			BatteryCostPerKWh: b.CostPerKWh,
			MaxReferenceCost:  DefaultCatalogMaxReferenceCost,
		}
	}
	if pc.PVCostPerKWp != nil {
		out.PVCostPerKWp = *pc.PVCostPerKWp
	}
	if pc.BatteryCostPerKWh != nil {
		out.BatteryCostPerKWh = *pc.BatteryCostPerKWh
	}
	if pc.MaxReferenceCost != nil {
		out.MaxReferenceCost = *pc.MaxReferenceCost
	}
	if err := out.Validate(); err != nil {
		return scoring.CostModel{}, err
	}
	return out, nil
}
