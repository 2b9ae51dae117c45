package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-battery-sizing/internal/model"
)

func TestDefault_Contents(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Batteries, 3)
	assert.Len(t, c.Modules, 3)
	assert.Len(t, c.Inverters, 3)
	assert.Len(t, c.Cities, 15)
	assert.Len(t, c.Profiles, 4)
	assert.Len(t, c.Tariffs, 2)
	assert.Len(t, c.Subsidies, 4)

	li, err := c.Battery(model.TechLithium)
	require.NoError(t, err)
	assert.Equal(t, "lithium", li.ID)
	assert.Equal(t, "Lithium-ion", li.Name)
	assert.InDelta(t, 0.85, li.DoD, 1e-12)
	assert.InDelta(t, 0.95, li.Efficiency, 1e-12)

	pb, err := c.Battery(model.TechLeadAcid)
	require.NoError(t, err)
	assert.Equal(t, "Plomb-acide", pb.Name)
	assert.InDelta(t, 0.5, pb.DoD, 1e-12)
	assert.InDelta(t, 0.85, pb.Efficiency, 1e-12)
}

func TestDefault_IsACopy(t *testing.T) {
	a := Default()
	delete(a.Batteries, model.TechLithium)

	b := Default()
	_, err := b.Battery(model.TechLithium)
	assert.NoError(t, err)
}

func TestLookups_Unknown(t *testing.T) {
	c := Default()

	_, err := c.Battery("sodium")
	assert.ErrorIs(t, err, model.ErrUnknownTechnology)
	_, err = c.Module("perovskite")
	assert.ErrorIs(t, err, model.ErrUnknownModule)
	_, err = c.City("Paris")
	assert.ErrorIs(t, err, model.ErrUnknownCity)
	_, err = c.Profile("office")
	assert.ErrorIs(t, err, model.ErrUnknownProfile)
	_, err = c.Tariff("industrial")
	assert.ErrorIs(t, err, model.ErrUnknownTariff)
	_, err = c.Subsidy("wind")
	assert.ErrorIs(t, err, model.ErrUnknownSubsidy)
	_, err = c.Inverter("central")
	assert.ErrorIs(t, err, model.ErrUnknownInverter)

	var de *model.DomainError
	_, err = c.City("Paris")
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Paris", de.Field)
}

func TestCity_ByIDOrName(t *testing.T) {
	c := Default()

	byID, err := c.City("fes")
	require.NoError(t, err)
	byName, err := c.City("Fès")
	require.NoError(t, err)
	assert.Equal(t, byID, byName)
	assert.InDelta(t, 1950.0, byID.Irradiation, 1e-9)

	agadir, err := c.City(" AGADIR ")
	require.NoError(t, err)
	assert.InDelta(t, 1850.0, agadir.Irradiation, 1e-9)
}

func TestListings_Sorted(t *testing.T) {
	c := Default()

	ids := func(n int, at func(int) string) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = at(i)
		}
		return out
	}

	bats := c.ListBatteries()
	assert.Equal(t, []string{"lead_acid", "lithium", "stationary"},
		ids(len(bats), func(i int) string { return bats[i].ID }))

	mods := c.ListModules()
	assert.Equal(t, []string{"monocrystalline", "polycrystalline", "thin_film"},
		ids(len(mods), func(i int) string { return mods[i].ID }))

	cities := c.ListCities()
	assert.Equal(t, "agadir", cities[0].ID)
	assert.Equal(t, "tetouan", cities[len(cities)-1].ID)

	profiles := c.ListProfiles()
	assert.Equal(t, []string{"eco", "high_consumption", "rural", "urban_standard"},
		ids(len(profiles), func(i int) string { return profiles[i].ID }))
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
batteries:
  lithium:
    name: LFP
    dod: 0.9
    efficiency: 0.96
    cost_per_kwh: 3000
  sodium:
    name: Sodium-ion
    dod: 0.8
    efficiency: 0.9
    cost_per_kwh: 2500
cities:
  ouarzazate: {name: Ouarzazate, irradiation: 2300}
`), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	li, err := c.Battery("lithium")
	require.NoError(t, err)
	assert.Equal(t, "LFP", li.Name)
	assert.InDelta(t, 0.9, li.DoD, 1e-12)

	na, err := c.Battery("sodium")
	require.NoError(t, err)
	assert.Equal(t, "sodium", na.ID)

	_, err = c.Battery("lead_acid")
	assert.NoError(t, err)

	city, err := c.City("Ouarzazate")
	require.NoError(t, err)
	assert.InDelta(t, 2300.0, city.Irradiation, 1e-9)
	assert.Len(t, c.Cities, 16)
}

func TestLoadFile_RejectsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
batteries:
  broken:
    name: Broken
    dod: 0
    efficiency: 0.9
`), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "catalog.yaml")

	require.NoError(t, Default().Save(path))
	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Batteries, c.Batteries)
	assert.Equal(t, Default().Tariffs, c.Tariffs)
}

func TestTariff_Validate(t *testing.T) {
	assert.Error(t, Tariff{}.Validate())
	assert.Error(t, Tariff{Blocks: []TariffBlock{{Limit: 0, Price: 1}, {Limit: 100, Price: 1}}}.Validate())
	assert.Error(t, Tariff{Blocks: []TariffBlock{{Limit: 200, Price: 1}, {Limit: 100, Price: 1}}}.Validate())
	assert.NoError(t, Tariff{Blocks: []TariffBlock{{Limit: 100, Price: 1}, {Limit: 0, Price: 2}}}.Validate())
}

func TestOpen(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Batteries)

	_, err = Open("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}
