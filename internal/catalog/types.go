package catalog

import "errors"

type Inverter struct {
	ID            string  `json:"id" yaml:"-"`
	Name          string  `json:"name" yaml:"name"`
	Efficiency    float64 `json:"efficiency" yaml:"efficiency"`
	CostPerKW     float64 `json:"cost_per_kw" yaml:"cost_per_kw"`
	LifetimeYears int     `json:"lifetime_years" yaml:"lifetime_years"`
}

// City carries the annual irradiation (kWh/m²) used to size a site.
type City struct {
	ID          string  `json:"id" yaml:"-"`
	Name        string  `json:"name" yaml:"name"`
	Irradiation float64 `json:"irradiation" yaml:"irradiation"`
}

// Profile is a typical household consumption pattern.
type Profile struct {
	ID                   string  `json:"id" yaml:"-"`
	Name                 string  `json:"name" yaml:"name"`
	AnnualConsumptionKWh float64 `json:"annual_consumption" yaml:"annual_consumption"`
	DayFraction          float64 `json:"day_fraction" yaml:"day_fraction"`
}

// TariffBlock prices consumption up to Limit kWh (cumulative, per year).
// A zero limit means the block is unbounded.
type TariffBlock struct {
	Limit float64 `json:"limit" yaml:"limit"`
	Price float64 `json:"price" yaml:"price"`
}

type Tariff struct {
	ID           string        `json:"id" yaml:"-"`
	Name         string        `json:"name" yaml:"name"`
	FixedMonthly float64       `json:"fixed_monthly" yaml:"fixed_monthly"`
	Blocks       []TariffBlock `json:"blocks" yaml:"blocks"`
}

func (t Tariff) Validate() error {
	if len(t.Blocks) == 0 {
		return errors.New("tariff has no blocks")
	}
	prev := 0.0
	for i, b := range t.Blocks {
		if b.Price < 0 {
			return errors.New("tariff block price must be >= 0")
		}
		last := i == len(t.Blocks)-1
		if b.Limit == 0 && !last {
			return errors.New("only the last tariff block may be unbounded")
		}
		if b.Limit != 0 && b.Limit <= prev {
			return errors.New("tariff block limits must be increasing")
		}
		prev = b.Limit
	}
	return nil
}

type Subsidy struct {
	ID        string  `json:"id" yaml:"-"`
	Name      string  `json:"name" yaml:"name"`
	Rate      float64 `json:"rate" yaml:"rate"`
	MaxAmount float64 `json:"max_amount" yaml:"max_amount"`
}
