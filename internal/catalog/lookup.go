package catalog

import (
	"strings"

	"pv-battery-sizing/internal/model"
)

// Battery satisfies scenario.TechLookup.
func (c *Catalog) Battery(id string) (model.BatteryTechSpec, error) {
	b, ok := c.Batteries[normalizeID(id)]
	if !ok {
		return model.BatteryTechSpec{}, model.NewDomainError("lookup_battery", id, model.ErrUnknownTechnology)
	}
	return b, nil
}

func (c *Catalog) Module(id string) (model.PVModuleSpec, error) {
	m, ok := c.Modules[normalizeID(id)]
	if !ok {
		return model.PVModuleSpec{}, model.NewDomainError("lookup_module", id, model.ErrUnknownModule)
	}
	return m, nil
}

func (c *Catalog) Inverter(id string) (Inverter, error) {
	inv, ok := c.Inverters[normalizeID(id)]
	if !ok {
		return Inverter{}, model.NewDomainError("lookup_inverter", id, model.ErrUnknownInverter)
	}
	return inv, nil
}

// City matches either the id or the display name, ignoring case.
func (c *Catalog) City(name string) (City, error) {
	key := normalizeID(name)
	if city, ok := c.Cities[key]; ok {
		return city, nil
	}
	for _, city := range c.Cities {
		if strings.EqualFold(city.Name, strings.TrimSpace(name)) {
			return city, nil
		}
	}
	return City{}, model.NewDomainError("lookup_city", name, model.ErrUnknownCity)
}

func (c *Catalog) Profile(id string) (Profile, error) {
	p, ok := c.Profiles[normalizeID(id)]
	if !ok {
		return Profile{}, model.NewDomainError("lookup_profile", id, model.ErrUnknownProfile)
	}
	return p, nil
}

func (c *Catalog) Tariff(id string) (Tariff, error) {
	t, ok := c.Tariffs[normalizeID(id)]
	if !ok {
		return Tariff{}, model.NewDomainError("lookup_tariff", id, model.ErrUnknownTariff)
	}
	return t, nil
}

func (c *Catalog) Subsidy(id string) (Subsidy, error) {
	s, ok := c.Subsidies[normalizeID(id)]
	if !ok {
		return Subsidy{}, model.NewDomainError("lookup_subsidy", id, model.ErrUnknownSubsidy)
	}
	return s, nil
}

// Listings, sorted by id.

func (c *Catalog) ListBatteries() []model.BatteryTechSpec {
	out := make([]model.BatteryTechSpec, 0, len(c.Batteries))
	for _, id := range sortedKeys(c.Batteries) {
		out = append(out, c.Batteries[id])
	}
	return out
}

func (c *Catalog) ListModules() []model.PVModuleSpec {
	out := make([]model.PVModuleSpec, 0, len(c.Modules))
	for _, id := range sortedKeys(c.Modules) {
		out = append(out, c.Modules[id])
	}
	return out
}

func (c *Catalog) ListInverters() []Inverter {
	out := make([]Inverter, 0, len(c.Inverters))
	for _, id := range sortedKeys(c.Inverters) {
		out = append(out, c.Inverters[id])
	}
	return out
}

func (c *Catalog) ListCities() []City {
	out := make([]City, 0, len(c.Cities))
	for _, id := range sortedKeys(c.Cities) {
		out = append(out, c.Cities[id])
	}
	return out
}

func (c *Catalog) ListProfiles() []Profile {
	out := make([]Profile, 0, len(c.Profiles))
	for _, id := range sortedKeys(c.Profiles) {
		out = append(out, c.Profiles[id])
	}
	return out
}

func (c *Catalog) ListTariffs() []Tariff {
	out := make([]Tariff, 0, len(c.Tariffs))
	for _, id := range sortedKeys(c.Tariffs) {
		out = append(out, c.Tariffs[id])
	}
	return out
}

func (c *Catalog) ListSubsidies() []Subsidy {
	out := make([]Subsidy, 0, len(c.Subsidies))
	for _, id := range sortedKeys(c.Subsidies) {
		out = append(out, c.Subsidies[id])
	}
	return out
}
