package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"pv-battery-sizing/internal/model"
)

var csvHeader = []string{
	"scenario",
	"pv_power",
	"battery_capacity",
	"pv_production",
	"direct_use",
	"energy_to_store",
	"energy_stored",
	"energy_discharged",
	"grid_import",
	"grid_export",
	"energy_losses",
	"self_consumption_rate",
	"coverage_rate",
	"grid_reduction",
	"autonomy_hours",
	"recommended_tech",
	"score",
	"score_grid_reduction",
	"score_self_consumption_rate",
	"score_coverage_rate",
	"score_cost_efficiency",
	"total_cost",
}

// WriteScenariosCSV writes one flat row per scenario outcome to path.
func WriteScenariosCSV(path string, outcomes []model.ScenarioOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeScenariosCSV(f, outcomes)
}

func EncodeScenariosCSV(out io.Writer, outcomes []model.ScenarioOutcome) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range outcomes {
		row := []string{
			string(o.Scenario),
			fmtFloat(o.PVPowerKWp),
			fmtFloat(o.BatteryCapacityKWh),
			fmtFloat(o.PVProduction),
			fmtFloat(o.DirectUse),
			fmtFloat(o.EnergyToStore),
			fmtFloat(o.EnergyStored),
			fmtFloat(o.EnergyDischarged),
			fmtFloat(o.GridImport),
			fmtFloat(o.GridExport),
			fmtFloat(o.EnergyLosses),
			fmtFloat(o.SelfConsumptionRate),
			fmtFloat(o.CoverageRate),
			fmtFloat(o.GridReduction),
			fmtFloat(o.AutonomyHours),
			o.RecommendedTech,
			fmtFloat(o.Score),
			fmtFloat(o.Breakdown.GridReduction),
			fmtFloat(o.Breakdown.SelfConsumptionRate),
			fmtFloat(o.Breakdown.CoverageRate),
			fmtFloat(o.Breakdown.CostEfficiency),
			fmtFloat(o.TotalCost),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
