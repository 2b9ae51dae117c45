package scenario

import "pv-battery-sizing/internal/model"

// TechLookup resolves a battery technology identifier to its specs.
type TechLookup interface {
	Battery(id string) (model.BatteryTechSpec, error)
}

// Techs is a map-backed TechLookup.
type Techs map[string]model.BatteryTechSpec

func (t Techs) Battery(id string) (model.BatteryTechSpec, error) {
	spec, ok := t[id]
	if !ok {
		return model.BatteryTechSpec{}, model.NewDomainError("lookup_battery", id, model.ErrUnknownTechnology)
	}
	if spec.ID == "" {
		spec.ID = id
	}
	return spec, nil
}
